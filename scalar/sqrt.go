//go:build !fastmath

package scalar

// Sqrt returns the square root of x. Sqrt(0) is 0 and negative input is NaN.
func Sqrt(x Float) Float {
	return stdSqrt(x)
}
