//go:build !purego

package dot

import (
	_ "github.com/cwbudde/algo-dot/dot/internal/arch/simd"
)
