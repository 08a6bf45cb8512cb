package kernel

import (
	"testing"

	"github.com/cwbudde/algo-gmath/scalar"
)

func BenchmarkAddBlock16(b *testing.B) {
	var dst, x, y [16]scalar.Float
	for i := range x {
		x[i] = scalar.Float(i)
		y[i] = scalar.Float(16 - i)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		AddBlock(dst[:], x[:], y[:])
	}
}

func BenchmarkScaleBlock16(b *testing.B) {
	var dst, x [16]scalar.Float
	for i := range x {
		x[i] = scalar.Float(i)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ScaleBlock(dst[:], x[:], 0.5)
	}
}
