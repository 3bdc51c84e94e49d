//go:build !purego && !amd64 && !arm64

package simd

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-dot/dot/internal/registry"
)

// algo-vecmath falls back to scalar code here, so the kernel is ranked below
// unrolled.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "simd",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   5,
		DotProduct: DotProduct,
	})
}
