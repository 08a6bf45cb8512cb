//go:build !gmath_double

package kernel

import "github.com/cwbudde/algo-gmath/scalar"

// AddBlock computes dst[i] = a[i] + b[i]. Panics if lengths differ.
func AddBlock(dst, a, b []scalar.Float) { addBlock(dst, a, b) }

// SubBlock computes dst[i] = a[i] - b[i]. Panics if lengths differ.
func SubBlock(dst, a, b []scalar.Float) { subBlock(dst, a, b) }

// ScaleBlock computes dst[i] = src[i] * s. Panics if lengths differ.
func ScaleBlock(dst, src []scalar.Float, s scalar.Float) { scaleBlock(dst, src, s) }

// Backend names the implementation used by AddBlock, SubBlock and ScaleBlock.
func Backend() string { return "generic" }
