package dot

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-dot/dot/internal/registry"
)

// Func computes a dot product with one fixed kernel.
type Func func(a, b []float64) (float64, error)

// Backend describes a registered kernel.
type Backend struct {
	Name      string
	SIMDLevel string
	Priority  int
	Default   bool
}

var (
	defaultEntry    *registry.OpEntry
	defaultInitOnce sync.Once
)

func initDefault() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("dot: no kernel registered")
	}
	defaultEntry = entry
}

func defaultKernel() *registry.OpEntry {
	defaultInitOnce.Do(initDefault)
	return defaultEntry
}

// Product returns sum(a[i] * b[i]) using the default kernel.
func Product(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}
	return defaultKernel().DotProduct(a, b), nil
}

// ProductWith returns sum(a[i] * b[i]) using the kernel registered as name.
func ProductWith(name string, a, b []float64) (float64, error) {
	f, err := Resolve(name)
	if err != nil {
		return 0, err
	}
	return f(a, b)
}

// Resolve returns the kernel registered as name wrapped with length
// validation. An empty name resolves the default kernel.
func Resolve(name string) (Func, error) {
	var entry *registry.OpEntry
	if name == "" {
		entry = defaultKernel()
	} else {
		entry = registry.Global.Find(name)
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}

	kernel := entry.DotProduct
	return func(a, b []float64) (float64, error) {
		if err := checkLengths(a, b); err != nil {
			return 0, err
		}
		return kernel(a, b), nil
	}, nil
}

// Default returns the name of the kernel Product uses.
func Default() string {
	return defaultKernel().Name
}

// Backends lists the registered kernels, highest priority first.
func Backends() []Backend {
	def := Default()
	entries := registry.Global.ListEntries()

	out := make([]Backend, len(entries))
	for i, e := range entries {
		out[i] = Backend{
			Name:      e.Name,
			SIMDLevel: e.SIMDLevel.String(),
			Priority:  e.Priority,
			Default:   e.Name == def,
		}
	}
	return out
}
