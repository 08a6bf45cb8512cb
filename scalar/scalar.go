package scalar

import "math"

// DefaultEpsilon is the tolerance used by NearlyEqual and by the
// ApproxEqual methods of the vec and mat packages.
//
// It is the single precision machine epsilon in every build, so float64
// builds compare with the same tolerance as float32 builds unless the
// caller passes an explicit one.
const DefaultEpsilon Float = 1.1920928955078125e-07

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// NearlyEqual reports whether a and b differ by at most DefaultEpsilon.
func NearlyEqual(a, b Float) bool {
	return NearlyEqualEps(a, b, DefaultEpsilon)
}

// NearlyEqualEps reports whether |a-b| <= tol.
//
// The comparison is absolute, not relative. NaN is never equal to anything;
// infinities are equal only to an infinity of the same sign.
func NearlyEqualEps(a, b, tol Float) bool {
	if a == b {
		return true
	}

	return Abs(a-b) <= tol
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg Float) Float {
	return deg * degToRad
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad Float) Float {
	return rad * radToDeg
}
