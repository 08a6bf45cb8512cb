package vec

import (
	"fmt"

	"github.com/cwbudde/algo-gmath/scalar"
)

// Vec2 is a 2-component vector.
type Vec2 struct {
	X, Y scalar.Float
}

// New2 returns the vector (x, y).
func New2(x, y scalar.Float) Vec2 { return Vec2{X: x, Y: y} }

// Splat2 returns a vector with every component set to v.
func Splat2(v scalar.Float) Vec2 { return Vec2{X: v, Y: v} }

// Add returns the component-wise sum v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale multiplies every component by s.
func (v Vec2) Scale(s scalar.Float) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Negate returns v with every component negated.
func (v Vec2) Negate() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) scalar.Float { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of (v, 0) and
// (o, 0): v.X*o.Y - v.Y*o.X. Its sign tells which side of v the vector o
// lies on.
func (v Vec2) Cross(o Vec2) scalar.Float { return v.X*o.Y - v.Y*o.X }

// LengthSq returns the squared length, v.Dot(v).
func (v Vec2) LengthSq() scalar.Float { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vec2) Length() scalar.Float { return scalar.Sqrt(v.LengthSq()) }

// Distance returns the length of v-o.
func (v Vec2) Distance(o Vec2) scalar.Float { return v.Sub(o).Length() }

// DistanceSq returns the squared length of v-o.
func (v Vec2) DistanceSq(o Vec2) scalar.Float { return v.Sub(o).LengthSq() }

// Normalize divides every component by the length of v.
// A zero-length vector yields NaN components; use TryNormalize to get an
// error instead.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{v.X / l, v.Y / l}
}

// TryNormalize is like Normalize but returns ErrZeroLength for a
// zero-length vector.
func (v Vec2) TryNormalize() (Vec2, error) {
	l := v.Length()
	if l == 0 {
		return Vec2{}, ErrZeroLength
	}
	return Vec2{v.X / l, v.Y / l}, nil
}

// IsUnit reports whether the length of v is within tol of 1.
func (v Vec2) IsUnit(tol scalar.Float) bool {
	return scalar.NearlyEqualEps(v.Length(), 1, tol)
}

// ApproxEqual reports whether every component is within
// scalar.DefaultEpsilon of the matching component of o.
func (v Vec2) ApproxEqual(o Vec2) bool { return v.ApproxEqualEps(o, scalar.DefaultEpsilon) }

// ApproxEqualEps reports whether every component is within tol of the
// matching component of o.
func (v Vec2) ApproxEqualEps(o Vec2, tol scalar.Float) bool {
	return scalar.NearlyEqualEps(v.X, o.X, tol) &&
		scalar.NearlyEqualEps(v.Y, o.Y, tol)
}

// Vec3 extends v with a z component.
func (v Vec2) Vec3(z scalar.Float) Vec3 { return Vec3{v.X, v.Y, z} }

// Array returns the components in x, y order.
func (v Vec2) Array() [2]scalar.Float { return [2]scalar.Float{v.X, v.Y} }

// String formats v as "(x, y)".
func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
