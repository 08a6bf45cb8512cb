package mat

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-gmath/internal/kernel"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// Mat4 is a 4×4 matrix in column-major order: m[c*4+r] is row r, column c.
type Mat4 [16]scalar.Float

// Mat4FromSlice copies 16 column-major elements into a Mat4.
func Mat4FromSlice(s []scalar.Float) (Mat4, error) {
	var m Mat4
	if err := validateElementCount(len(s), len(m)); err != nil {
		return m, err
	}
	copy(m[:], s)
	return m, nil
}

// Mat4FromRows builds a matrix from its rows.
func Mat4FromRows(r0, r1, r2, r3 vec.Vec4) Mat4 {
	return Mat4{
		r0.X, r1.X, r2.X, r3.X,
		r0.Y, r1.Y, r2.Y, r3.Y,
		r0.Z, r1.Z, r2.Z, r3.Z,
		r0.W, r1.W, r2.W, r3.W,
	}
}

// Mat4FromCols builds a matrix from its columns.
func Mat4FromCols(c0, c1, c2, c3 vec.Vec4) Mat4 {
	return Mat4{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// Fill4 returns a matrix with every element set to v.
func Fill4(v scalar.Float) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = v
	}
	return m
}

// Diag4 returns a matrix with v on the diagonal and zero elsewhere.
func Diag4(v scalar.Float) Mat4 {
	return Mat4{
		v, 0, 0, 0,
		0, v, 0, 0,
		0, 0, v, 0,
		0, 0, 0, v,
	}
}

// Ident4 returns the 4×4 identity matrix.
func Ident4() Mat4 { return Diag4(1) }

// At returns the element in row, col.
func (m Mat4) At(row, col int) scalar.Float { return m[col*4+row] }

// Row returns row i.
func (m Mat4) Row(i int) vec.Vec4 {
	return vec.Vec4{X: m[i], Y: m[4+i], Z: m[8+i], W: m[12+i]}
}

// Col returns column i.
func (m Mat4) Col(i int) vec.Vec4 {
	return vec.Vec4{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2], W: m[i*4+3]}
}

// Grid returns the elements indexed [row][col].
func (m Mat4) Grid() [4][4]scalar.Float {
	var g [4][4]scalar.Float
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g[r][c] = m[c*4+r]
		}
	}
	return g
}

// Add returns the element-wise sum m+o.
func (m Mat4) Add(o Mat4) Mat4 {
	var out Mat4
	kernel.AddBlock(out[:], m[:], o[:])
	return out
}

// Sub returns the element-wise difference m-o.
func (m Mat4) Sub(o Mat4) Mat4 {
	var out Mat4
	kernel.SubBlock(out[:], m[:], o[:])
	return out
}

// Scale multiplies every element by s.
func (m Mat4) Scale(s scalar.Float) Mat4 {
	var out Mat4
	kernel.ScaleBlock(out[:], m[:], s)
	return out
}

// Mul returns the matrix product m·o. Applied to a vector, o acts first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = m[0*4+r]*o[c*4+0] +
				m[1*4+r]*o[c*4+1] +
				m[2*4+r]*o[c*4+2] +
				m[3*4+r]*o[c*4+3]
		}
	}
	return out
}

// MulVec transforms v by m: each output component is a row of m dotted
// with v.
func (m Mat4) MulVec(v vec.Vec4) vec.Vec4 {
	return vec.Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// inverseTerms splits m into the cross products used by both Det and
// Inverse. a..d are the upper three rows of columns 0..3 and x, y, z, w the
// bottom row.
func (m Mat4) inverseTerms() (a, b, c, d, s, t, u, v vec.Vec3, x, y, z, w scalar.Float) {
	a = vec.Vec3{X: m[0], Y: m[1], Z: m[2]}
	b = vec.Vec3{X: m[4], Y: m[5], Z: m[6]}
	c = vec.Vec3{X: m[8], Y: m[9], Z: m[10]}
	d = vec.Vec3{X: m[12], Y: m[13], Z: m[14]}
	x, y, z, w = m[3], m[7], m[11], m[15]

	s = a.Cross(b)
	t = c.Cross(d)
	u = a.Scale(y).Sub(b.Scale(x))
	v = c.Scale(w).Sub(d.Scale(z))
	return
}

// Det returns the determinant of m.
func (m Mat4) Det() scalar.Float {
	_, _, _, _, s, t, u, v, _, _, _, _ := m.inverseTerms()
	return s.Dot(v) + t.Dot(u)
}

// Inverse returns the inverse of m, or ErrSingular if the determinant is
// zero.
func (m Mat4) Inverse() (Mat4, error) {
	a, b, c, d, s, t, u, v, x, y, z, w := m.inverseTerms()

	det := s.Dot(v) + t.Dot(u)
	if det == 0 {
		return Mat4{}, ErrSingular
	}
	inv := 1 / det
	s, t, u, v = s.Scale(inv), t.Scale(inv), u.Scale(inv), v.Scale(inv)

	r0 := b.Cross(v).Add(t.Scale(y))
	r1 := v.Cross(a).Sub(t.Scale(x))
	r2 := d.Cross(u).Add(s.Scale(w))
	r3 := u.Cross(c).Sub(s.Scale(z))

	return Mat4FromRows(
		r0.Vec4(-b.Dot(t)),
		r1.Vec4(a.Dot(t)),
		r2.Vec4(-d.Dot(s)),
		r3.Vec4(c.Dot(s)),
	), nil
}

// Mat3 returns the upper-left 3×3 block.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// ApproxEqual reports whether every element is within
// scalar.DefaultEpsilon of the matching element of o.
func (m Mat4) ApproxEqual(o Mat4) bool { return m.ApproxEqualEps(o, scalar.DefaultEpsilon) }

// ApproxEqualEps reports whether every element is within tol of the
// matching element of o.
func (m Mat4) ApproxEqualEps(o Mat4, tol scalar.Float) bool {
	for i := range m {
		if !scalar.NearlyEqualEps(m[i], o[i], tol) {
			return false
		}
	}
	return true
}

// String formats m one row per line.
func (m Mat4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", m[r], m[4+r], m[8+r], m[12+r])
	}
	return sb.String()
}
