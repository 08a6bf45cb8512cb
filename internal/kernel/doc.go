// Package kernel implements the element-wise operations behind matrix
// addition, subtraction and scalar multiplication on flat buffers.
//
// Float32 builds call the generic pure Go loops directly so that the flat
// arrays of Mat3 and Mat4 stay on the stack.
//
// In gmath_double builds implementations register themselves in Global
// during init and the first call selects one by CPU features. The generic
// loops are always registered; an algo-vecmath backed entry is added when
// the CPU offers a SIMD level that algo-vecmath accelerates. The purego tag
// skips it.
package kernel
