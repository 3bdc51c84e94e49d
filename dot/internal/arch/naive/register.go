package naive

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-dot/dot/internal/registry"
)

// Priority: 0 (picked only when nothing faster is registered)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "naive",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		DotProduct: DotProduct,
	})
}
