package fieldindex

import (
	"iter"

	"github.com/hupe1980/vaultindex/value"
)

// PresenceIndex tracks only which documents carry a field. It is the
// default for fields where existence is all queries ever ask for, or
// where a value index has not been deemed worth its memory.
type PresenceIndex struct {
	present *DocSet
}

var _ Index = (*PresenceIndex)(nil)

// NewPresence creates an empty presence index over the dictionary.
func NewPresence(dict *Dictionary) *PresenceIndex {
	return &PresenceIndex{present: NewDocSet(dict)}
}

// Kind implements Index.
func (ix *PresenceIndex) Kind() Kind { return KindPresence }

// Add records the document as present. The value is ignored.
func (ix *PresenceIndex) Add(id string, _ value.Value) {
	ix.present.Add(id)
}

// Delete removes the document from the presence set.
func (ix *PresenceIndex) Delete(id string, _ value.Value) {
	ix.present.Remove(id)
}

// All returns the live presence set.
func (ix *PresenceIndex) All() *DocSet {
	return ix.present
}

// Equals reports unsupported; callers fall back to scanning All.
func (ix *PresenceIndex) Equals(value.Value) (*DocSet, bool) {
	return nil, false
}

// Ascending reports unsupported.
func (ix *PresenceIndex) Ascending() (iter.Seq[string], bool) {
	return nil, false
}

// Descending reports unsupported.
func (ix *PresenceIndex) Descending() (iter.Seq[string], bool) {
	return nil, false
}
