package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-dot/dot"
)

// DefaultN is the reference vector length.
const DefaultN = 1_000_000

// DefaultBackends are timed when no backend is named.
var DefaultBackends = []string{"naive", "unrolled", "simd"}

// ErrInvalidConfig is wrapped by configuration errors from New.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config controls one benchmark run.
type Config struct {
	// N is the vector length.
	N int

	// Seed seeds vector generation. 0 draws a fresh seed.
	Seed uint64

	// Backends lists the kernels to time, in output order.
	Backends []string

	// Repeat times each backend this many times and keeps the fastest.
	Repeat int
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		N:        DefaultN,
		Backends: availableDefaults(),
		Repeat:   1,
	}
}

// availableDefaults drops default backends that are not built, such as simd
// under the purego tag.
func availableDefaults() []string {
	out := make([]string, 0, len(DefaultBackends))
	for _, name := range DefaultBackends {
		if _, err := dot.Resolve(name); err == nil {
			out = append(out, name)
		}
	}
	return out
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.N < 0 {
		return fmt.Errorf("%w: negative vector length %d", ErrInvalidConfig, c.N)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be at least 1, got %d", ErrInvalidConfig, c.Repeat)
	}
	if len(c.Backends) == 0 {
		return fmt.Errorf("%w: no backends", ErrInvalidConfig)
	}
	for _, name := range c.Backends {
		if _, err := dot.Resolve(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

type timedBackend struct {
	name string
	fn   dot.Func
}

// Driver runs a configured benchmark.
type Driver struct {
	cfg      Config
	backends []timedBackend

	now func() time.Time
}

// New validates cfg and resolves its backends.
func New(cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	backends := make([]timedBackend, 0, len(cfg.Backends))
	for _, name := range cfg.Backends {
		fn, err := dot.Resolve(name)
		if err != nil {
			return nil, err
		}
		backends = append(backends, timedBackend{name: name, fn: fn})
	}

	return &Driver{
		cfg:      cfg,
		backends: backends,
		now:      time.Now,
	}, nil
}

// Config returns the driver's configuration.
func (d *Driver) Config() Config {
	return d.cfg
}

// Run times every backend on a and b, in configured order. The first error
// aborts the run.
func (d *Driver) Run(a, b []float64) ([]Result, error) {
	results := make([]Result, 0, len(d.backends))
	for _, tb := range d.backends {
		r, err := d.time(tb, a, b)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (d *Driver) time(tb timedBackend, a, b []float64) (Result, error) {
	var (
		value float64
		best  time.Duration
	)
	for i := 0; i < d.cfg.Repeat; i++ {
		start := d.now()
		v, err := tb.fn(a, b)
		elapsed := d.now().Sub(start)
		if err != nil {
			return Result{}, fmt.Errorf("bench: %s: %w", tb.name, err)
		}
		if i == 0 || elapsed < best {
			best = elapsed
		}
		value = v
	}
	return Result{Label: tb.name, Value: value, Elapsed: best}, nil
}

// RunRandom generates vectors from the configured seed and runs every backend.
func (d *Driver) RunRandom() (Report, error) {
	a, b, seed := NewVectors(d.cfg.Seed, d.cfg.N)

	results, err := d.Run(a, b)
	if err != nil {
		return Report{}, err
	}

	return Report{N: d.cfg.N, Seed: seed, Results: results}, nil
}
