package mat

import (
	"fmt"

	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// Orthographic returns a parallel projection mapping the box
// [left,right]×[bottom,top]×[near,far] onto the cube [-1,1]³.
//
// All three axes use the same mapping, so near maps to -1 and far to +1 and
// Orthographic(-1, 1, -1, 1, -1, 1) is the identity. For the glOrtho
// convention, where near and far are distances in front of a camera that
// looks down -z, pass -near and -far.
func Orthographic(left, right, bottom, top, near, far scalar.Float) (Mat4, error) {
	if err := validateOrthographic(left, right, bottom, top, near, far); err != nil {
		return Mat4{}, err
	}

	m := Ident4()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = 2 / (far - near)
	m[12] = (left + right) / (left - right)
	m[13] = (bottom + top) / (bottom - top)
	m[14] = (near + far) / (near - far)
	return m, nil
}

// Perspective returns a symmetric perspective projection in the OpenGL
// convention: the camera looks down -z, the near plane at z=-near maps to
// -1 and the far plane at z=-far to +1 after the perspective divide.
//
// fovY is the vertical field of view in radians and aspect is width/height.
func Perspective(fovY, aspect, near, far scalar.Float) (Mat4, error) {
	if err := validatePerspective(fovY, aspect, near, far); err != nil {
		return Mat4{}, err
	}

	f := 1 / scalar.Tan(fovY/2)
	nf := 1 / (near - far)

	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (near + far) * nf
	m[11] = -1
	m[14] = 2 * near * far * nf
	return m, nil
}

// LookAt returns a view matrix for a camera at eye looking at center, with
// up giving the approximate vertical direction.
func LookAt(eye, center, up vec.Vec3) (Mat4, error) {
	f, err := center.Sub(eye).TryNormalize()
	if err != nil {
		return Mat4{}, fmt.Errorf("%w: eye and center coincide", ErrDegenerateView)
	}
	s, err := f.Cross(up).TryNormalize()
	if err != nil {
		return Mat4{}, fmt.Errorf("%w: up is parallel to the view direction", ErrDegenerateView)
	}
	u := s.Cross(f)

	return Mat4FromRows(
		s.Vec4(-s.Dot(eye)),
		u.Vec4(-u.Dot(eye)),
		f.Negate().Vec4(f.Dot(eye)),
		vec.Vec4{W: 1},
	), nil
}
