package fieldindex

import (
	"iter"

	"github.com/hupe1980/vaultindex/value"
)

// EverythingIndex is the degenerate index for fields carried by (almost)
// every document, such as revision numbers or type tags. Maintaining a
// per-document set for such a field costs O(population) for no
// information, so existence delegates to a caller-supplied enumerator and
// mutation is ignored.
type EverythingIndex struct {
	all func() *DocSet
}

var _ Index = (*EverythingIndex)(nil)

// NewEverything creates an index whose existence set is whatever the
// enumerator returns. The enumerator must not be nil; it is owned by the
// surrounding document registry.
func NewEverything(all func() *DocSet) *EverythingIndex {
	return &EverythingIndex{all: all}
}

// Kind implements Index.
func (ix *EverythingIndex) Kind() Kind { return KindEverything }

// Add is a no-op; presence is derived from the enumerator.
func (ix *EverythingIndex) Add(string, value.Value) {}

// Delete is a no-op.
func (ix *EverythingIndex) Delete(string, value.Value) {}

// All returns the full document population.
func (ix *EverythingIndex) All() *DocSet {
	return ix.all()
}

// Equals reports unsupported.
func (ix *EverythingIndex) Equals(value.Value) (*DocSet, bool) {
	return nil, false
}

// Ascending reports unsupported.
func (ix *EverythingIndex) Ascending() (iter.Seq[string], bool) {
	return nil, false
}

// Descending reports unsupported.
func (ix *EverythingIndex) Descending() (iter.Seq[string], bool) {
	return nil, false
}
