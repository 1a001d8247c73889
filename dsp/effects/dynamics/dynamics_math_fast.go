//go:build fastmath

package dynamics

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

const (
	// ln2 is the natural logarithm of 2, used for log base conversions.
	ln2 = 0.693147180559945309417232121458
	// ln10 is the natural logarithm of 10.
	ln10 = 2.30258509299404568401799145468
)

// mathLog2 computes log2(x) using fast approximation.
// Uses the identity: log2(x) = ln(x) / ln(2)
func mathLog2(x float64) float64 {
	return approx.FastLog(x) / ln2
}

// mathLog10 computes log10(x) using fast approximation.
func mathLog10(x float64) float64 {
	return approx.FastLog(x) / ln10
}

// mathPower2 computes 2^x using fast approximation.
// Uses the identity: 2^x = e^(x * ln(2))
func mathPower2(x float64) float64 {
	return approx.FastExp(x * ln2)
}

// mathPower10 stays exact so that zero gain reduction maps to a gain of
// exactly one and ratio 1:1 remains bit-transparent.
func mathPower10(x float64) float64 {
	return math.Pow(10, x)
}
