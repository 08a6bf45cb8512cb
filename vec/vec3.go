package vec

import (
	"fmt"

	"github.com/cwbudde/algo-gmath/scalar"
)

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z scalar.Float
}

// New3 returns the vector (x, y, z).
func New3(x, y, z scalar.Float) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Splat3 returns a vector with every component set to v.
func Splat3(v scalar.Float) Vec3 { return Vec3{X: v, Y: v, Z: v} }

// Add returns the component-wise sum v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Scale multiplies every component by s.
func (v Vec3) Scale(s scalar.Float) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Negate returns v with every component negated.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) scalar.Float { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared length, v.Dot(v).
func (v Vec3) LengthSq() scalar.Float { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vec3) Length() scalar.Float { return scalar.Sqrt(v.LengthSq()) }

// Distance returns the length of v-o.
func (v Vec3) Distance(o Vec3) scalar.Float { return v.Sub(o).Length() }

// DistanceSq returns the squared length of v-o.
func (v Vec3) DistanceSq(o Vec3) scalar.Float { return v.Sub(o).LengthSq() }

// Normalize divides every component by the length of v.
// A zero-length vector yields NaN components; use TryNormalize to get an
// error instead.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// TryNormalize is like Normalize but returns ErrZeroLength for a
// zero-length vector.
func (v Vec3) TryNormalize() (Vec3, error) {
	l := v.Length()
	if l == 0 {
		return Vec3{}, ErrZeroLength
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}, nil
}

// IsUnit reports whether the length of v is within tol of 1.
func (v Vec3) IsUnit(tol scalar.Float) bool {
	return scalar.NearlyEqualEps(v.Length(), 1, tol)
}

// ApproxEqual reports whether every component is within
// scalar.DefaultEpsilon of the matching component of o.
func (v Vec3) ApproxEqual(o Vec3) bool { return v.ApproxEqualEps(o, scalar.DefaultEpsilon) }

// ApproxEqualEps reports whether every component is within tol of the
// matching component of o.
func (v Vec3) ApproxEqualEps(o Vec3, tol scalar.Float) bool {
	return scalar.NearlyEqualEps(v.X, o.X, tol) &&
		scalar.NearlyEqualEps(v.Y, o.Y, tol) &&
		scalar.NearlyEqualEps(v.Z, o.Z, tol)
}

// Vec2 drops the z component.
func (v Vec3) Vec2() Vec2 { return Vec2{v.X, v.Y} }

// Vec4 extends v with a w component. Use w=1 for points and w=0 for
// directions.
func (v Vec3) Vec4(w scalar.Float) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// Array returns the components in x, y, z order.
func (v Vec3) Array() [3]scalar.Float { return [3]scalar.Float{v.X, v.Y, v.Z} }

// String formats v as "(x, y, z)".
func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }
