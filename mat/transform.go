package mat

import (
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// Translate3 returns a 2D homogeneous translation by v.
func Translate3(v vec.Vec2) Mat3 {
	m := Ident3()
	m[6] = v.X
	m[7] = v.Y
	return m
}

// Scale3 returns a 2D homogeneous scale by v.
func Scale3(v vec.Vec2) Mat3 {
	m := Ident3()
	m[0] = v.X
	m[4] = v.Y
	return m
}

// Rotate3 returns a counter-clockwise 2D rotation by angle radians,
// embedded in a 3×3 homogeneous matrix.
func Rotate3(angle scalar.Float) Mat3 {
	s, c := scalar.Sin(angle), scalar.Cos(angle)
	return Mat3FromRows(
		vec.Vec3{X: c, Y: -s},
		vec.Vec3{X: s, Y: c},
		vec.Vec3{Z: 1},
	)
}

// Translate4 returns a translation by v.
func Translate4(v vec.Vec3) Mat4 {
	m := Ident4()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Scale4 returns a scale by v.
func Scale4(v vec.Vec3) Mat4 {
	m := Ident4()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// Rotate4 returns a right-handed rotation by angle radians around axis
// (Rodrigues' formula).
//
// axis must have unit length. It is not normalized here; a non-unit axis
// produces a matrix that also scales and shears. Check with
// axis.IsUnit(tol) or normalize with axis.TryNormalize when unsure.
func Rotate4(angle scalar.Float, axis vec.Vec3) Mat4 {
	s, c := scalar.Sin(angle), scalar.Cos(angle)
	k := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4FromRows(
		vec.Vec4{X: x*x*k + c, Y: x*y*k - z*s, Z: x*z*k + y*s},
		vec.Vec4{X: y*x*k + z*s, Y: y*y*k + c, Z: y*z*k - x*s},
		vec.Vec4{X: z*x*k - y*s, Y: z*y*k + x*s, Z: z*z*k + c},
		vec.Vec4{W: 1},
	)
}

// RotateX4 returns a rotation by angle radians around the x axis.
func RotateX4(angle scalar.Float) Mat4 {
	s, c := scalar.Sin(angle), scalar.Cos(angle)
	return Mat4FromRows(
		vec.Vec4{X: 1},
		vec.Vec4{Y: c, Z: -s},
		vec.Vec4{Y: s, Z: c},
		vec.Vec4{W: 1},
	)
}

// RotateY4 returns a rotation by angle radians around the y axis.
func RotateY4(angle scalar.Float) Mat4 {
	s, c := scalar.Sin(angle), scalar.Cos(angle)
	return Mat4FromRows(
		vec.Vec4{X: c, Z: s},
		vec.Vec4{Y: 1},
		vec.Vec4{X: -s, Z: c},
		vec.Vec4{W: 1},
	)
}

// RotateZ4 returns a rotation by angle radians around the z axis.
func RotateZ4(angle scalar.Float) Mat4 {
	s, c := scalar.Sin(angle), scalar.Cos(angle)
	return Mat4FromRows(
		vec.Vec4{X: c, Y: -s},
		vec.Vec4{X: s, Y: c},
		vec.Vec4{Z: 1},
		vec.Vec4{W: 1},
	)
}
