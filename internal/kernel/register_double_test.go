//go:build gmath_double

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-gmath/internal/testutil"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestGlobalHasCompleteGenericEntry(t *testing.T) {
	entry := Global.Lookup(cpu.Features{ForceGeneric: true})
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "generic" {
		t.Fatalf("expected generic implementation, got %q", entry.Name)
	}
	if entry.AddBlock == nil || entry.SubBlock == nil || entry.ScaleBlock == nil {
		t.Fatalf("generic entry incomplete: %#v", entry)
	}
}

func TestEntriesMatchGeneric(t *testing.T) {
	for _, n := range []int{0, 1, 9, 16, 17} {
		a := testutil.DeterministicValues(int64(n), 100, n)
		b := testutil.DeterministicValues(int64(n)+1, 100, n)
		wantAdd := make([]scalar.Float, n)
		wantSub := make([]scalar.Float, n)
		wantScale := make([]scalar.Float, n)
		addBlock(wantAdd, a, b)
		subBlock(wantSub, a, b)
		scaleBlock(wantScale, a, 3.25)

		for _, entry := range Global.ListEntries() {
			got := make([]scalar.Float, n)

			entry.AddBlock(got, a, b)
			testutil.RequireSliceNearlyEqual(t, got, wantAdd, 0)

			entry.SubBlock(got, a, b)
			testutil.RequireSliceNearlyEqual(t, got, wantSub, 0)

			entry.ScaleBlock(got, a, 3.25)
			testutil.RequireSliceNearlyEqual(t, got, wantScale, 0)
		}
	}
}
