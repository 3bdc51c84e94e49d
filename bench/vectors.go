package bench

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomVector returns n values drawn uniformly from [0, 1).
func RandomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()
	}
	return v
}

// NewVectors returns two random vectors of length n from one source seeded
// with seed, and the seed actually used. A zero seed is replaced by a
// time-derived one.
func NewVectors(seed uint64, n int) (a, b []float64, used uint64) {
	if seed == 0 {
		seed = freshSeed()
	}
	rng := rand.New(rand.NewSource(seed))
	a = RandomVector(rng, n)
	b = RandomVector(rng, n)
	return a, b, seed
}

func freshSeed() uint64 {
	s := uint64(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}
