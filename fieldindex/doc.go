// Package fieldindex implements per-field value indexes over vault
// documents.
//
// A field index answers four access patterns for one field name:
// membership ("which documents have this field"), equality ("which
// documents hold exactly this value"), and ascending/descending traversal
// of documents ordered by their value. Not every implementation supports
// every pattern; Equals, Ascending and Descending report support through
// an ok return, and callers fall back to scanning All() when an index
// declines. Capability is fixed when the index kind is chosen, never
// time-varying.
//
// Four implementations cover the field shapes seen in practice:
//
//   - Everything: fields present on (almost) every document, where
//     per-document tracking is wasted work. Existence delegates to an
//     enumeration closure over the whole population.
//   - Identity: the document-identity field itself. Equality delegates to
//     a membership closure; ordering sorts the enumerated set on demand.
//   - Presence: tracks existence only, in a mutable document set.
//   - Ordered: tracks existence plus a sorted mapping from value to the
//     set of documents holding it, for equality lookups and ordered
//     traversal.
//
// Document identities are opaque strings. Internally they are interned to
// dense uint32 rows by a Dictionary so id sets can live in Roaring
// Bitmaps; DocSet wraps a bitmap together with its dictionary and exposes
// string identities again.
//
// Indexes assume a single writer each. Reads may interleave with writes,
// and sets returned by All/Equals are live references; copy before
// further mutation if a stable snapshot is needed.
package fieldindex
