package kernel

import (
	"testing"

	"github.com/cwbudde/algo-gmath/scalar"
)

func TestBlockOps(t *testing.T) {
	a := []scalar.Float{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []scalar.Float{9, 8, 7, 6, 5, 4, 3, 2, 1}
	dst := make([]scalar.Float, len(a))

	AddBlock(dst, a, b)
	for i, v := range dst {
		if v != 10 {
			t.Fatalf("AddBlock()[%d] = %v, want 10", i, v)
		}
	}

	SubBlock(dst, a, b)
	for i, v := range dst {
		if want := a[i] - b[i]; v != want {
			t.Fatalf("SubBlock()[%d] = %v, want %v", i, v, want)
		}
	}

	ScaleBlock(dst, a, -0.5)
	for i, v := range dst {
		if want := a[i] * -0.5; v != want {
			t.Fatalf("ScaleBlock()[%d] = %v, want %v", i, v, want)
		}
	}

	if Backend() == "" {
		t.Fatal("Backend() is empty")
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"add", func() { addBlock(make([]scalar.Float, 2), make([]scalar.Float, 2), make([]scalar.Float, 3)) }},
		{"sub", func() { subBlock(make([]scalar.Float, 1), make([]scalar.Float, 2), make([]scalar.Float, 2)) }},
		{"scale", func() { scaleBlock(make([]scalar.Float, 4), make([]scalar.Float, 3), 1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic for length mismatch")
				}
			}()
			tc.fn()
		})
	}
}
