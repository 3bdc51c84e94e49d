package unrolled

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-dot/dot/internal/registry"
)

// Priority: 10 (preferred over naive, needs no SIMD)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "unrolled",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   10,
		DotProduct: DotProduct,
	})
}
