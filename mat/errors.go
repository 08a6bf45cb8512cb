package mat

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-gmath/scalar"
)

var (
	// ErrElementCount is returned when a slice has the wrong number of
	// elements for the requested matrix size.
	ErrElementCount = errors.New("mat: wrong element count")

	// ErrDegenerateFrustum is returned by projection generators whose
	// parameters describe a volume with zero extent along some axis.
	ErrDegenerateFrustum = errors.New("mat: degenerate projection volume")

	// ErrDegenerateView is returned by LookAt when the view direction is
	// zero or parallel to the up vector.
	ErrDegenerateView = errors.New("mat: degenerate view")

	// ErrSingular is returned when inverting a matrix with zero determinant.
	ErrSingular = errors.New("mat: singular matrix")
)

func validateElementCount(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d, want %d", ErrElementCount, got, want)
	}
	return nil
}

func validateOrthographic(left, right, bottom, top, near, far scalar.Float) error {
	if left == right {
		return fmt.Errorf("%w: left == right (%g)", ErrDegenerateFrustum, left)
	}
	if bottom == top {
		return fmt.Errorf("%w: bottom == top (%g)", ErrDegenerateFrustum, bottom)
	}
	if near == far {
		return fmt.Errorf("%w: near == far (%g)", ErrDegenerateFrustum, near)
	}
	return nil
}

func validatePerspective(fovY, aspect, near, far scalar.Float) error {
	if aspect == 0 {
		return fmt.Errorf("%w: aspect must be non-zero", ErrDegenerateFrustum)
	}
	if near == far {
		return fmt.Errorf("%w: near == far (%g)", ErrDegenerateFrustum, near)
	}
	if scalar.Tan(fovY/2) == 0 {
		return fmt.Errorf("%w: field of view %g has zero tangent", ErrDegenerateFrustum, fovY)
	}
	return nil
}
