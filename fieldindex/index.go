package fieldindex

import (
	"iter"

	"github.com/hupe1980/vaultindex/value"
)

// Kind selects one of the index implementations. The kind of a field is
// fixed at registration time; so are the capabilities that come with it.
type Kind uint8

const (
	// KindEverything delegates existence to a population enumerator and
	// supports nothing else.
	KindEverything Kind = iota + 1
	// KindIdentity indexes the document-identity field itself.
	KindIdentity
	// KindPresence tracks existence only.
	KindPresence
	// KindOrdered tracks existence plus a value-ordered mapping.
	KindOrdered
)

// String returns the kind name for logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindEverything:
		return "everything"
	case KindIdentity:
		return "identity"
	case KindPresence:
		return "presence"
	case KindOrdered:
		return "ordered"
	default:
		return "invalid"
	}
}

// Index is the contract every per-field index implements.
//
// Add and Delete record and drop (document, value) associations; both are
// idempotent and deleting a pair that was never added is a no-op. All
// returns the current existence set. Equals, Ascending and Descending
// return ok=false when the implementation cannot answer them; callers
// must treat that as a capability signal, distinct from an empty result,
// and fall back to scanning All().
//
// Sets returned by All and Equals are live references; traversals yield
// each present document exactly once, ordered by its value, and are lazy:
// consuming only a prefix costs proportionally.
type Index interface {
	// Kind reports which implementation this is.
	Kind() Kind

	// Add records that the document currently holds v for this field.
	Add(id string, v value.Value)

	// Delete removes the (document, value) association.
	Delete(id string, v value.Value)

	// All returns the set of documents that have this field.
	All() *DocSet

	// Equals returns the documents holding exactly v, or ok=false if
	// equality lookups are unsupported.
	Equals(v value.Value) (*DocSet, bool)

	// Ascending returns a value-ordered traversal of the existence set,
	// or ok=false if ordering is unsupported.
	Ascending() (iter.Seq[string], bool)

	// Descending returns the exact reverse of Ascending, or ok=false.
	Descending() (iter.Seq[string], bool)
}
