package mat

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-gmath/internal/kernel"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// Mat3 is a 3×3 matrix in column-major order: m[c*3+r] is row r, column c.
type Mat3 [9]scalar.Float

// Mat3FromSlice copies 9 column-major elements into a Mat3.
func Mat3FromSlice(s []scalar.Float) (Mat3, error) {
	var m Mat3
	if err := validateElementCount(len(s), len(m)); err != nil {
		return m, err
	}
	copy(m[:], s)
	return m, nil
}

// Mat3FromRows builds a matrix from its rows, so literals read the way the
// matrix is written on paper.
func Mat3FromRows(r0, r1, r2 vec.Vec3) Mat3 {
	return Mat3{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
	}
}

// Mat3FromCols builds a matrix from its columns.
func Mat3FromCols(c0, c1, c2 vec.Vec3) Mat3 {
	return Mat3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Fill3 returns a matrix with every element set to v.
func Fill3(v scalar.Float) Mat3 {
	return Mat3{v, v, v, v, v, v, v, v, v}
}

// Diag3 returns a matrix with v on the diagonal and zero elsewhere.
func Diag3(v scalar.Float) Mat3 {
	return Mat3{
		v, 0, 0,
		0, v, 0,
		0, 0, v,
	}
}

// Ident3 returns the 3×3 identity matrix.
func Ident3() Mat3 { return Diag3(1) }

// At returns the element in row, col.
func (m Mat3) At(row, col int) scalar.Float { return m[col*3+row] }

// Row returns row i.
func (m Mat3) Row(i int) vec.Vec3 { return vec.Vec3{X: m[i], Y: m[3+i], Z: m[6+i]} }

// Col returns column i.
func (m Mat3) Col(i int) vec.Vec3 { return vec.Vec3{X: m[i*3], Y: m[i*3+1], Z: m[i*3+2]} }

// Grid returns the elements indexed [row][col].
func (m Mat3) Grid() [3][3]scalar.Float {
	var g [3][3]scalar.Float
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g[r][c] = m[c*3+r]
		}
	}
	return g
}

// Add returns the element-wise sum m+o.
func (m Mat3) Add(o Mat3) Mat3 {
	var out Mat3
	kernel.AddBlock(out[:], m[:], o[:])
	return out
}

// Sub returns the element-wise difference m-o.
func (m Mat3) Sub(o Mat3) Mat3 {
	var out Mat3
	kernel.SubBlock(out[:], m[:], o[:])
	return out
}

// Scale multiplies every element by s.
func (m Mat3) Scale(s scalar.Float) Mat3 {
	var out Mat3
	kernel.ScaleBlock(out[:], m[:], s)
	return out
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c*3+r] = m[0*3+r]*o[c*3+0] +
				m[1*3+r]*o[c*3+1] +
				m[2*3+r]*o[c*3+2]
		}
	}
	return out
}

// MulVec transforms v by m: each output component is a row of m dotted
// with v.
func (m Mat3) MulVec(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose swaps rows and columns.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant of m.
func (m Mat3) Det() scalar.Float {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of m, or ErrSingular if the determinant is
// zero.
func (m Mat3) Inverse() (Mat3, error) {
	d := m.Det()
	if d == 0 {
		return Mat3{}, ErrSingular
	}
	inv := 1 / d
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}

// Mat4 embeds m in the upper-left of a 4×4 identity matrix.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// ApproxEqual reports whether every element is within
// scalar.DefaultEpsilon of the matching element of o.
func (m Mat3) ApproxEqual(o Mat3) bool { return m.ApproxEqualEps(o, scalar.DefaultEpsilon) }

// ApproxEqualEps reports whether every element is within tol of the
// matching element of o.
func (m Mat3) ApproxEqualEps(o Mat3, tol scalar.Float) bool {
	for i := range m {
		if !scalar.NearlyEqualEps(m[i], o[i], tol) {
			return false
		}
	}
	return true
}

// String formats m one row per line.
func (m Mat3) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%g %g %g]", m[r], m[3+r], m[6+r])
	}
	return sb.String()
}
