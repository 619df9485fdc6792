package fieldindex

import (
	"iter"
	"sort"

	"github.com/hupe1980/vaultindex/value"
)

// IdentityIndex specializes the document-identity field, where the value
// of the field for a document is the document's own id. Existence
// delegates to the population enumerator and equality to a membership
// closure, both references into the surrounding document registry.
//
// Ordering is supported but computed fresh per call by sorting the
// enumerated set, O(n log n). Identity lookups are rarely bulk-sorted, so
// keeping no sorted state is the better trade.
type IdentityIndex struct {
	dict   *Dictionary
	all    func() *DocSet
	lookup func(id string) bool
}

var _ Index = (*IdentityIndex)(nil)

// NewIdentity creates an identity index. Neither closure may be nil.
func NewIdentity(dict *Dictionary, all func() *DocSet, lookup func(id string) bool) *IdentityIndex {
	return &IdentityIndex{dict: dict, all: all, lookup: lookup}
}

// Kind implements Index.
func (ix *IdentityIndex) Kind() Kind { return KindIdentity }

// Add is a no-op; identity presence is derived from the enumerator.
func (ix *IdentityIndex) Add(string, value.Value) {}

// Delete is a no-op.
func (ix *IdentityIndex) Delete(string, value.Value) {}

// All returns the full document population.
func (ix *IdentityIndex) All() *DocSet {
	return ix.all()
}

// Equals answers equality for string values only: the result is a
// singleton set when the id exists and an empty set when it does not.
// Non-string values report unsupported.
func (ix *IdentityIndex) Equals(v value.Value) (*DocSet, bool) {
	id, ok := v.AsString()
	if !ok {
		return nil, false
	}

	s := NewDocSet(ix.dict)
	if ix.lookup(id) {
		s.Add(id)
	}
	return s, true
}

// Ascending returns identities sorted by the value order, which for the
// identity field is lexicographic string order. The sort runs when the
// sequence is consumed, each call seeing the population of that moment.
func (ix *IdentityIndex) Ascending() (iter.Seq[string], bool) {
	return func(yield func(string) bool) {
		ids := ix.sorted()
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}, true
}

// Descending is the exact reverse of Ascending.
func (ix *IdentityIndex) Descending() (iter.Seq[string], bool) {
	return func(yield func(string) bool) {
		ids := ix.sorted()
		for i := len(ids) - 1; i >= 0; i-- {
			if !yield(ids[i]) {
				return
			}
		}
	}, true
}

func (ix *IdentityIndex) sorted() []string {
	ids := ix.all().Slice()
	sort.Strings(ids)
	return ids
}
