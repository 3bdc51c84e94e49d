//go:build !purego && arm64

package simd

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-dot/dot/internal/registry"
)

// Priority: 20 (NEON is mandatory on arm64)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "simd",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   20,
		DotProduct: DotProduct,
	})
}
