package spectral

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-dot/dot/internal/registry"
)

// Priority: -10 (never the default)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "spectral",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   -10,
		DotProduct: DotProduct,
	})
}
