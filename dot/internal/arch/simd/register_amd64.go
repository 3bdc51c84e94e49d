//go:build !purego && amd64

package simd

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-dot/dot/internal/registry"
)

// Priority: 20 (preferred whenever SSE2 is available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "simd",
		SIMDLevel:  cpu.SIMDSSE2,
		Priority:   20,
		DotProduct: DotProduct,
	})
}
