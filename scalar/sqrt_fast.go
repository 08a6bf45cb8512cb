//go:build fastmath

package scalar

import "github.com/meko-christian/algo-approx"

// Sqrt returns an approximation of the square root of x.
// Zero, negative, infinite and NaN inputs use the exact path so that the
// special values match the default build.
func Sqrt(x Float) Float {
	if x <= 0 || IsNaN(x) || IsInf(x) {
		return stdSqrt(x)
	}

	return Float(approx.FastSqrt(float64(x)))
}
