// Package scalar holds the numeric foundation shared by the vec and mat
// packages: the component type, epsilon comparison and angle conversion.
//
// Precision is fixed at build time:
//
//	go build ./...                    // Float = float32 (default)
//	go build -tags gmath_double ./... // Float = float64
//
// The fastmath build tag swaps Sqrt for a fast approximation. Length and
// normalization results are then only accurate to roughly 1e-3 relative error.
package scalar
