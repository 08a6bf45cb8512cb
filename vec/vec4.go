package vec

import (
	"fmt"

	"github.com/cwbudde/algo-gmath/scalar"
)

// Vec4 is a 4-component vector, typically a homogeneous point or direction.
// There is no cross product for Vec4.
type Vec4 struct {
	X, Y, Z, W scalar.Float
}

// New4 returns the vector (x, y, z, w).
func New4(x, y, z, w scalar.Float) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Splat4 returns a vector with every component set to v.
func Splat4(v scalar.Float) Vec4 { return Vec4{X: v, Y: v, Z: v, W: v} }

// Add returns the component-wise sum v+o.
func (v Vec4) Add(o Vec4) Vec4 { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Sub returns the component-wise difference v-o.
func (v Vec4) Sub(o Vec4) Vec4 { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Mul multiplies component-wise.
func (v Vec4) Mul(o Vec4) Vec4 { return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W} }

// Scale multiplies every component by s.
func (v Vec4) Scale(s scalar.Float) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Negate returns v with every component negated.
func (v Vec4) Negate() Vec4 { return Vec4{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns the dot product of v and o.
func (v Vec4) Dot(o Vec4) scalar.Float { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// LengthSq returns the squared length, v.Dot(v).
func (v Vec4) LengthSq() scalar.Float { return v.Dot(v) }

// Length returns the Euclidean length over all four components.
func (v Vec4) Length() scalar.Float { return scalar.Sqrt(v.LengthSq()) }

// Distance returns the length of v-o.
func (v Vec4) Distance(o Vec4) scalar.Float { return v.Sub(o).Length() }

// DistanceSq returns the squared length of v-o.
func (v Vec4) DistanceSq(o Vec4) scalar.Float { return v.Sub(o).LengthSq() }

// Normalize divides every component, w included, by the length of v.
// A zero-length vector yields NaN components; use TryNormalize to get an
// error instead.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// TryNormalize is like Normalize but returns ErrZeroLength for a
// zero-length vector.
func (v Vec4) TryNormalize() (Vec4, error) {
	l := v.Length()
	if l == 0 {
		return Vec4{}, ErrZeroLength
	}
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W / l}, nil
}

// IsUnit reports whether the length of v is within tol of 1.
func (v Vec4) IsUnit(tol scalar.Float) bool {
	return scalar.NearlyEqualEps(v.Length(), 1, tol)
}

// ApproxEqual reports whether every component is within
// scalar.DefaultEpsilon of the matching component of o.
func (v Vec4) ApproxEqual(o Vec4) bool { return v.ApproxEqualEps(o, scalar.DefaultEpsilon) }

// ApproxEqualEps reports whether every component is within tol of the
// matching component of o.
func (v Vec4) ApproxEqualEps(o Vec4, tol scalar.Float) bool {
	return scalar.NearlyEqualEps(v.X, o.X, tol) &&
		scalar.NearlyEqualEps(v.Y, o.Y, tol) &&
		scalar.NearlyEqualEps(v.Z, o.Z, tol) &&
		scalar.NearlyEqualEps(v.W, o.W, tol)
}

// Vec3 drops the w component without dividing by it.
func (v Vec4) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Array returns the components in x, y, z, w order.
func (v Vec4) Array() [4]scalar.Float { return [4]scalar.Float{v.X, v.Y, v.Z, v.W} }

// String formats v as "(x, y, z, w)".
func (v Vec4) String() string { return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W) }
