// Package dot computes the dot product of two float64 vectors.
//
// One contract, several kernels:
//
//   - naive: one accumulator, index ascending. This is the reference.
//   - unrolled: four independent accumulators in pure Go.
//   - simd: SSE2/AVX2/NEON through algo-vecmath (absent with the purego tag).
//   - spectral: Parseval's identity over FFTs from algo-fft.
//
// Product uses the highest-priority kernel the CPU supports. ProductWith and
// Resolve select a kernel by name. Every kernel rejects vectors of different
// lengths with an error matching ErrInvalidArgument, and returns 0 for empty
// vectors.
//
// # Example
//
//	v, err := dot.Product([]float64{1, 2, 3}, []float64{4, 5, 6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // 32
package dot
