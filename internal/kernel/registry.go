package kernel

import (
	"sync"

	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// BinaryFn computes dst[i] = a[i] op b[i].
type BinaryFn func(dst, a, b []scalar.Float)

// ScaleFn computes dst[i] = src[i] * s.
type ScaleFn func(dst, src []scalar.Float, s scalar.Float)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name       string
	SIMDLevel  cpu.SIMDLevel
	Priority   int
	AddBlock   BinaryFn
	SubBlock   BinaryFn
	ScaleBlock ScaleFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
