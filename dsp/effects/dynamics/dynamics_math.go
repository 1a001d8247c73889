//go:build !fastmath

package dynamics

import "math"

// Exact backend for the gain computer. Build with -tags fastmath to swap
// the logarithms and 2^x for approximations.

func mathLog2(x float64) float64 { return math.Log2(x) }

func mathLog10(x float64) float64 { return math.Log10(x) }

func mathPower2(x float64) float64 { return math.Pow(2, x) }

func mathPower10(x float64) float64 { return math.Pow(10, x) }
