//go:build !gmath_double

package testutil

import "github.com/cwbudde/algo-gmath/scalar"

// Tol is the default absolute tolerance for results that went through a
// handful of arithmetic operations at the active precision.
const Tol scalar.Float = 1e-5
