package kernel

import "github.com/cwbudde/algo-gmath/scalar"

func addBlock(dst, a, b []scalar.Float) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subBlock(dst, a, b []scalar.Float) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func scaleBlock(dst, src []scalar.Float, s scalar.Float) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] * s
	}
}
