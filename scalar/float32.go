//go:build !gmath_double

package scalar

import "github.com/chewxy/math32"

// Float is the component type of every vector and matrix.
type Float = float32

// BitSize is the width of Float in bits.
const BitSize = 32

// MachineEpsilon is the gap between 1 and the next representable Float.
const MachineEpsilon Float = 1.1920928955078125e-07

// Abs returns the absolute value of x.
func Abs(x Float) Float { return math32.Abs(x) }

// Sin returns the sine of the radian argument x.
func Sin(x Float) Float { return math32.Sin(x) }

// Cos returns the cosine of the radian argument x.
func Cos(x Float) Float { return math32.Cos(x) }

// Tan returns the tangent of the radian argument x.
func Tan(x Float) Float { return math32.Tan(x) }

// Mod returns the floating-point remainder of x/y. The result has the
// sign of x.
func Mod(x, y Float) Float { return math32.Mod(x, y) }

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN(x Float) bool { return math32.IsNaN(x) }

// IsInf reports whether x is an infinity of either sign.
func IsInf(x Float) bool { return math32.IsInf(x, 0) }

func stdSqrt(x Float) Float { return math32.Sqrt(x) }
