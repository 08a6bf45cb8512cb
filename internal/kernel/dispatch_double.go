//go:build gmath_double

package kernel

import (
	"sync"

	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	selected   *OpEntry
	selectOnce sync.Once
)

func initSelection() {
	entry := Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no implementation registered (missing generic fallback?)")
	}
	if entry.AddBlock == nil || entry.SubBlock == nil || entry.ScaleBlock == nil {
		panic("kernel: selected implementation " + entry.Name + " is incomplete")
	}

	selected = entry
}

func current() *OpEntry {
	selectOnce.Do(initSelection)
	return selected
}

// resetSelection forces the next call to repeat the lookup. Intended for tests.
func resetSelection() {
	selectOnce = sync.Once{}
	selected = nil
}

// AddBlock computes dst[i] = a[i] + b[i]. Panics if lengths differ.
// dst must not overlap b.
func AddBlock(dst, a, b []scalar.Float) { current().AddBlock(dst, a, b) }

// SubBlock computes dst[i] = a[i] - b[i]. Panics if lengths differ.
// dst must not overlap a.
func SubBlock(dst, a, b []scalar.Float) { current().SubBlock(dst, a, b) }

// ScaleBlock computes dst[i] = src[i] * s. Panics if lengths differ.
func ScaleBlock(dst, src []scalar.Float, s scalar.Float) { current().ScaleBlock(dst, src, s) }

// Backend names the implementation used by AddBlock, SubBlock and ScaleBlock.
func Backend() string { return current().Name }
