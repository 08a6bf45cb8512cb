// Package mat provides 3×3 and 4×4 matrices and the transform generators a
// real-time renderer needs to build model, view and projection matrices.
//
// # Layout
//
// Mat3 and Mat4 are flat arrays in column-major order, the OpenGL
// convention: the element in row r, column c of an N×N matrix is stored at
// index c*N + r. A Mat4 can be handed to glUniformMatrix4fv with
// transpose=false. At, Row, Col and Grid give the row/column view of the
// same storage.
//
// Vectors are column vectors and transforms compose right to left:
//
//	mvp := proj.Mul(view).Mul(model)
//	clip := mvp.MulVec(p.Vec4(1))
//
// # Errors
//
// Generators whose parameters can describe a degenerate volume return an
// error wrapping ErrDegenerateFrustum or ErrDegenerateView instead of a
// matrix full of Inf and NaN. Rotate4 expects a unit axis and does not
// normalize it.
package mat
