package vaultindex

import (
	"sync"

	"github.com/hupe1980/vaultindex/fieldindex"
	"github.com/hupe1980/vaultindex/value"
)

// Document is the typed field map of one vault document.
type Document map[string]value.Value

// Clone creates a shallow copy of the document. Values are immutable by
// convention, so sharing them is safe.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	clone := make(Document, len(d))
	for k, v := range d {
		clone[k] = v
	}
	return clone
}

// Store keeps the current field values of every document and drives the
// registry's indexes from them. Updating a document deletes the old
// (field, value) pairs before adding the new ones; the indexes perform
// no implicit replacement themselves.
//
// Store is the indexing pipeline's single writer and also serves as the
// ValueSource for fallback scans.
type Store struct {
	r *Registry

	mu   sync.RWMutex
	docs map[string]Document
}

// NewStore creates a store driving the given registry.
func NewStore(r *Registry) *Store {
	return &Store{
		r:    r,
		docs: make(map[string]Document),
	}
}

// Put sets a document's fields, reindexing exactly the pairs that
// changed. Unchanged fields are left untouched.
func (s *Store) Put(id string, doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.docs[id]

	// Delete pairs that disappeared or changed value.
	for field, ov := range old {
		nv, ok := doc[field]
		if ok && nv.Key() == ov.Key() {
			continue
		}
		s.r.Delete(field, id, ov)
	}

	// Add pairs that are new or changed value.
	for field, nv := range doc {
		ov, ok := old[field]
		if ok && ov.Key() == nv.Key() {
			continue
		}
		s.r.Add(field, id, nv)
	}

	s.docs[id] = doc.Clone()
	s.r.AddDocument(id)
}

// Remove deletes a document, unindexing all of its pairs.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return
	}
	for field, v := range doc {
		s.r.Delete(field, id, v)
	}
	delete(s.docs, id)
	s.r.RemoveDocument(id)
}

// Get returns a copy of the document's current fields.
func (s *Store) Get(id string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	return doc.Clone(), true
}

// Value implements ValueSource.
func (s *Store) Value(id, field string) (value.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return value.Value{}, false
	}
	v, ok := doc[field]
	return v, ok
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs)
}

// Compile resolves a filter set against the registry, with this store
// as the fallback value source.
func (s *Store) Compile(fs *FilterSet) *fieldindex.DocSet {
	return s.r.CompileFilter(fs, s)
}
