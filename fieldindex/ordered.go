package fieldindex

import (
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/hupe1980/vaultindex/value"
)

// OrderedIndex tracks both presence and a sorted mapping from value to
// the set of documents holding it. Equality is a direct bucket lookup;
// ascending and descending traversals flatten buckets in key order.
//
// The sorted map is kept as a sorted slice of distinct values plus a
// bucket map keyed by the value's stable key, so lookups are O(1) and
// ordered traversal needs no per-call sort. Buckets are removed the
// moment their last document leaves; empty buckets never accumulate as
// values churn.
//
// One writer per index. The create-bucket-then-insert sequence in Add is
// not atomic against a concurrent writer; serialize externally if more
// than one producer exists.
type OrderedIndex struct {
	dict    *Dictionary
	present *DocSet

	// keys holds the distinct indexed values sorted by orderKeys.
	keys []value.Value

	// buckets maps value.Key() to the documents holding that value.
	buckets map[string]*DocSet
}

var _ Index = (*OrderedIndex)(nil)

// NewOrdered creates an empty ordered value index over the dictionary.
func NewOrdered(dict *Dictionary) *OrderedIndex {
	return &OrderedIndex{
		dict:    dict,
		present: NewDocSet(dict),
		buckets: make(map[string]*DocSet),
	}
}

// Kind implements Index.
func (ix *OrderedIndex) Kind() Kind { return KindOrdered }

// orderKeys is the three-way order of the keys slice: the value order
// first, then the stable key as a tie-break so distinct values that
// compare equal (an int and a float of the same magnitude) keep a
// deterministic position.
func orderKeys(a, b value.Value) int {
	if c := value.Compare(a, b); c != 0 {
		return c
	}
	return strings.Compare(a.Key(), b.Key())
}

// Add records that the document currently holds v. Adding the same
// (document, value) pair twice leaves a single entry.
func (ix *OrderedIndex) Add(id string, v value.Value) {
	ix.present.Add(id)

	k := v.Key()
	b, ok := ix.buckets[k]
	if !ok {
		b = NewDocSet(ix.dict)
		ix.buckets[k] = b
		ix.insertKey(v)
	}
	b.Add(id)
}

// Delete removes the (document, value) association. The document leaves
// the presence set only if it was in the bucket for v, so deleting a pair
// that was never added, or deleting twice, changes nothing.
func (ix *OrderedIndex) Delete(id string, v value.Value) {
	k := v.Key()
	b, ok := ix.buckets[k]
	if !ok || !b.Contains(id) {
		return
	}

	b.Remove(id)
	ix.present.Remove(id)

	if b.IsEmpty() {
		delete(ix.buckets, k)
		ix.removeKey(v)
	}
}

// All returns the live presence set.
func (ix *OrderedIndex) All() *DocSet {
	return ix.present
}

// Equals returns the bucket for v, or an explicit empty set if the value
// was never indexed. Equality is always supported here; an empty result
// means no matches, not inability.
func (ix *OrderedIndex) Equals(v value.Value) (*DocSet, bool) {
	if b, ok := ix.buckets[v.Key()]; ok {
		return b, true
	}
	return NewDocSet(ix.dict), true
}

// Ascending traverses buckets in value order, documents within a bucket
// in first-seen order. Each present document appears exactly once. The
// traversal is lazy, bucket by bucket; consuming a prefix costs
// proportionally.
func (ix *OrderedIndex) Ascending() (iter.Seq[string], bool) {
	return func(yield func(string) bool) {
		for i := 0; i < len(ix.keys); i++ {
			b, ok := ix.buckets[ix.keys[i].Key()]
			if !ok {
				continue
			}
			for id := range b.IDs() {
				if !yield(id) {
					return
				}
			}
		}
	}, true
}

// Descending is the exact reverse of Ascending: buckets in reverse value
// order, documents within a bucket in reverse first-seen order.
func (ix *OrderedIndex) Descending() (iter.Seq[string], bool) {
	return func(yield func(string) bool) {
		for i := len(ix.keys) - 1; i >= 0; i-- {
			b, ok := ix.buckets[ix.keys[i].Key()]
			if !ok {
				continue
			}
			for id := range b.IDsReverse() {
				if !yield(id) {
					return
				}
			}
		}
	}, true
}

// Values returns the number of distinct indexed values.
func (ix *OrderedIndex) Values() int {
	return len(ix.keys)
}

func (ix *OrderedIndex) insertKey(v value.Value) {
	pos := sort.Search(len(ix.keys), func(i int) bool {
		return orderKeys(ix.keys[i], v) >= 0
	})
	ix.keys = slices.Insert(ix.keys, pos, v)
}

func (ix *OrderedIndex) removeKey(v value.Value) {
	pos := sort.Search(len(ix.keys), func(i int) bool {
		return orderKeys(ix.keys[i], v) >= 0
	})
	if pos < len(ix.keys) && orderKeys(ix.keys[pos], v) == 0 {
		ix.keys = slices.Delete(ix.keys, pos, pos+1)
	}
}
