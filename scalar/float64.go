//go:build gmath_double

package scalar

import "math"

// Float is the component type of every vector and matrix.
type Float = float64

// BitSize is the width of Float in bits.
const BitSize = 64

// MachineEpsilon is the gap between 1 and the next representable Float.
const MachineEpsilon Float = 2.220446049250313e-16

// Abs returns the absolute value of x.
func Abs(x Float) Float { return math.Abs(x) }

// Sin returns the sine of the radian argument x.
func Sin(x Float) Float { return math.Sin(x) }

// Cos returns the cosine of the radian argument x.
func Cos(x Float) Float { return math.Cos(x) }

// Tan returns the tangent of the radian argument x.
func Tan(x Float) Float { return math.Tan(x) }

// Mod returns the floating-point remainder of x/y. The result has the
// sign of x.
func Mod(x, y Float) Float { return math.Mod(x, y) }

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN(x Float) bool { return math.IsNaN(x) }

// IsInf reports whether x is an infinity of either sign.
func IsInf(x Float) bool { return math.IsInf(x, 0) }

func stdSqrt(x Float) Float { return math.Sqrt(x) }
