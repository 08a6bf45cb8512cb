//go:build gmath_double && !purego

package kernel

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	level := simdLevel(cpu.DetectFeatures())
	if level == cpu.SIMDNone {
		// Without SIMD the dispatch overhead outweighs 16 scalar adds.
		return
	}

	Global.Register(OpEntry{
		Name:       "vecmath",
		SIMDLevel:  level,
		Priority:   10,
		AddBlock:   vecmathAdd,
		SubBlock:   vecmathSub,
		ScaleBlock: vecmath.ScaleBlock,
	})
}

func simdLevel(f cpu.Features) cpu.SIMDLevel {
	switch {
	case f.HasAVX2:
		return cpu.SIMDAVX2
	case f.HasNEON:
		return cpu.SIMDNEON
	case f.HasSSE2:
		return cpu.SIMDSSE2
	default:
		return cpu.SIMDNone
	}
}

// dst must not overlap b.
func vecmathAdd(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	copy(dst, a)
	vecmath.AddBlockInPlace(dst, b)
}

// dst must not overlap a.
func vecmathSub(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	vecmath.ScaleBlock(dst, b, -1)
	vecmath.AddBlockInPlace(dst, a)
}
