// Package vaultindex provides in-memory field-value indexing for vault
// documents.
//
// A vault is a large, mutable collection of notes and their structural
// sub-objects (pages, sections, blocks), each identified by an opaque
// string and carrying typed field values. Vaultindex answers queries of
// the form "all documents where field F equals / exists / ordered by V"
// without scanning every document, while documents are continuously
// added, removed and re-indexed as files change.
//
// # Quick Start
//
//	reg := vaultindex.NewRegistry()
//	store := vaultindex.NewStore(reg)
//
//	store.Put("notes/a.md", vaultindex.Document{
//	    "status": value.String("active"),
//	    "rating": value.Int(5),
//	})
//
//	result := store.Compile(vaultindex.NewFilterSet(
//	    vaultindex.Filter{Field: "status", Op: vaultindex.OpEqual, Value: value.String("active")},
//	))
//	for id := range result.IDs() {
//	    fmt.Println(id)
//	}
//
// # Index Kinds
//
// Each field gets one index, selected at registration time from the four
// kinds in package fieldindex: Everything for near-universal system
// fields, Identity for the document-identity field, Presence for
// existence-only tracking, and Ordered for full equality lookups plus
// sorted traversal. Capabilities are fixed with the kind; the filter
// compiler queries them and falls back to scanning when an index
// declines an operation.
//
// # Mutation Model
//
// Indices are always live and queryable; there is no build or seal
// phase. Each field's index assumes a single writer. Nothing here
// persists across restarts: indexes are rebuilt in memory on load.
package vaultindex
