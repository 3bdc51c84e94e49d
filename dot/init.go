package dot

// Kernels register themselves with the registry from init().

import (
	_ "github.com/cwbudde/algo-dot/dot/internal/arch/naive"
	_ "github.com/cwbudde/algo-dot/dot/internal/arch/spectral"
	_ "github.com/cwbudde/algo-dot/dot/internal/arch/unrolled"
)
