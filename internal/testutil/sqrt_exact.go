//go:build !fastmath

package testutil

import "github.com/cwbudde/algo-gmath/scalar"

// SqrtTol is the extra tolerance for results that depend on scalar.Sqrt.
const SqrtTol scalar.Float = 0
