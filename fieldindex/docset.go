package fieldindex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// DocSet is a set of document identities backed by a Roaring Bitmap.
// It wraps the bitmap together with the dictionary that interned the
// rows, so callers see string identities throughout.
//
// Set operations (And, Or, AndNot) require both sets to share one
// dictionary; all sets produced by one registry do.
type DocSet struct {
	dict *Dictionary
	rb   *roaring.Bitmap
}

// NewDocSet creates an empty document set over the given dictionary.
func NewDocSet(dict *Dictionary) *DocSet {
	return &DocSet{
		dict: dict,
		rb:   roaring.New(),
	}
}

// Add inserts a document identity, interning it if unseen.
func (s *DocSet) Add(id string) {
	s.rb.Add(s.dict.Intern(id))
}

// Remove removes a document identity. Removing an absent id is a no-op.
func (s *DocSet) Remove(id string) {
	if row, ok := s.dict.Row(id); ok {
		s.rb.Remove(row)
	}
}

// Contains checks membership of a document identity.
func (s *DocSet) Contains(id string) bool {
	row, ok := s.dict.Row(id)
	return ok && s.rb.Contains(row)
}

// Len returns the number of documents in the set.
func (s *DocSet) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set is empty.
func (s *DocSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// IDs returns an iterator over identities in ascending row order, which
// is the order documents were first seen by the dictionary.
func (s *DocSet) IDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			id, ok := s.dict.ID(it.Next())
			if !ok {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// IDsReverse returns an iterator over identities in descending row order.
func (s *DocSet) IDsReverse() iter.Seq[string] {
	return func(yield func(string) bool) {
		it := s.rb.ReverseIterator()
		for it.HasNext() {
			id, ok := s.dict.ID(it.Next())
			if !ok {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// Slice materializes the set as a slice of identities in row order.
func (s *DocSet) Slice() []string {
	out := make([]string, 0, s.Len())
	for id := range s.IDs() {
		out = append(out, id)
	}
	return out
}

// Clone returns a deep copy sharing the dictionary.
func (s *DocSet) Clone() *DocSet {
	return &DocSet{
		dict: s.dict,
		rb:   s.rb.Clone(),
	}
}

// And intersects with another set in place.
func (s *DocSet) And(other *DocSet) {
	s.rb.And(other.rb)
}

// Or unions with another set in place.
func (s *DocSet) Or(other *DocSet) {
	s.rb.Or(other.rb)
}

// AndNot removes every document of other from the set.
func (s *DocSet) AndNot(other *DocSet) {
	s.rb.AndNot(other.rb)
}

// Clear removes all documents from the set.
func (s *DocSet) Clear() {
	s.rb.Clear()
}

// Dictionary returns the dictionary this set resolves rows through.
func (s *DocSet) Dictionary() *Dictionary {
	return s.dict
}
