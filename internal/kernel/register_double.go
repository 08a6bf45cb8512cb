//go:build gmath_double

package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

// Global is the kernel registry consulted by AddBlock, SubBlock and
// ScaleBlock. It only exists in gmath_double builds; float32 builds call
// the generic loops directly.
var Global = &OpRegistry{}

func init() {
	Global.Register(OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		AddBlock:   addBlock,
		SubBlock:   subBlock,
		ScaleBlock: scaleBlock,
	})
}
