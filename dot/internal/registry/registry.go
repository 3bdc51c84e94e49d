// Package registry holds the dot product kernels available to package dot.
//
// Kernels register themselves from init() in their arch packages. Lookup
// picks the highest-priority kernel whose SIMD level the CPU supports; Find
// returns a kernel by name regardless of CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// KernelFn computes the dot product of two slices of equal length.
// Callers validate lengths before invoking a kernel.
type KernelFn func(a, b []float64) float64

// OpEntry is one registered kernel.
type OpEntry struct {
	// Name identifies the kernel on the command line and in reports.
	Name string

	// SIMDLevel is the instruction set the kernel needs to be picked by Lookup.
	SIMDLevel cpu.SIMDLevel

	// Priority orders kernels for default selection, highest first.
	//   - spectral: -10 (never default)
	//   - naive:     0
	//   - unrolled: 10
	//   - simd:     20
	Priority int

	DotProduct KernelFn
}

// OpRegistry stores registered kernels.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries sorted by priority, descending
}

// Global is the registry used by package dot.
var Global = &OpRegistry{}

// Register adds a kernel. A later registration with the same name replaces
// the earlier one.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			r.entries[i] = entry
			r.sorted = false
			return
		}
	}

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority kernel supported by features, or nil
// if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}

	return nil
}

// Find returns the kernel registered under name, or nil.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			entry := r.entries[i]
			return &entry
		}
	}

	return nil
}

// ListEntries returns a copy of all entries sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

// sortByPriority sorts entries by priority in descending order, keeping
// registration order for equal priorities.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort; there are only a handful of kernels.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
