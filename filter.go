package vaultindex

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/hupe1980/vaultindex/fieldindex"
	"github.com/hupe1980/vaultindex/value"
)

// Op is a predicate operator over one field.
type Op string

const (
	// OpEqual matches documents whose field holds exactly the value.
	OpEqual Op = "eq"
	// OpExists matches documents that have the field at all.
	OpExists Op = "exists"
)

// Filter is a single-field predicate.
type Filter struct {
	Field string
	Op    Op
	Value value.Value
}

// FilterSet is a conjunction of filters; a document matches when every
// filter matches.
type FilterSet struct {
	Filters []Filter
}

// NewFilterSet creates a new filter set.
func NewFilterSet(filters ...Filter) *FilterSet {
	return &FilterSet{Filters: filters}
}

// hash digests the filter set together with a registry revision, giving
// the compiled-filter cache key.
func (fs *FilterSet) hash(revision uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], revision)
	_, _ = d.Write(buf[:])
	for _, f := range fs.Filters {
		_, _ = d.WriteString(f.Field)
		_, _ = d.WriteString("\x1e")
		_, _ = d.WriteString(string(f.Op))
		_, _ = d.WriteString("\x1e")
		_, _ = d.WriteString(f.Value.Key())
		_, _ = d.WriteString("\x1f")
	}
	return d.Sum64()
}

// ValueSource resolves the current value a document holds for a field.
// It backs the fallback scan used when an index cannot answer equality
// directly. Store implements it.
type ValueSource interface {
	Value(id, field string) (value.Value, bool)
}

// CompileFilter resolves a filter set to the set of matching documents,
// intersecting per-field results smallest-first. Equality predicates use
// the field index when it supports them and otherwise fall back to
// scanning the field's existence set, comparing values through source.
// With a nil source, unsupported equality predicates match nothing.
//
// A nil or empty filter set compiles to the empty set, not the full
// document population; callers wanting every document use
// Registry.Documents.
//
// The returned set is owned by the caller. Results are cached per
// registry revision when caching is enabled.
func (r *Registry) CompileFilter(fs *FilterSet, source ValueSource) *fieldindex.DocSet {
	if fs == nil || len(fs.Filters) == 0 {
		return fieldindex.NewDocSet(r.dict)
	}

	var key uint64
	if r.cache != nil {
		key = fs.hash(r.Revision())
		if cached, ok := r.cache.Get(key); ok {
			filterCacheHits.Inc()
			return cached.Clone()
		}
		filterCacheMisses.Inc()
	}

	sets := make([]*fieldindex.DocSet, 0, len(fs.Filters))
	for _, f := range fs.Filters {
		sets = append(sets, r.resolveFilter(f, source))
	}

	// Intersect starting from the smallest set to reduce work.
	base := 0
	for i := 1; i < len(sets); i++ {
		if sets[i].Len() < sets[base].Len() {
			base = i
		}
	}

	result := sets[base].Clone()
	for i, s := range sets {
		if i == base || result.IsEmpty() {
			continue
		}
		result.And(s)
	}

	if r.cache != nil {
		r.cache.Add(key, result.Clone())
	}
	return result
}

// FilterFunc compiles a filter set to a membership test.
func (r *Registry) FilterFunc(fs *FilterSet, source ValueSource) func(id string) bool {
	matched := r.CompileFilter(fs, source)
	return func(id string) bool {
		return matched.Contains(id)
	}
}

func (r *Registry) resolveFilter(f Filter, source ValueSource) *fieldindex.DocSet {
	ix, ok := r.fields.Load(f.Field)
	if !ok {
		return fieldindex.NewDocSet(r.dict)
	}

	switch f.Op {
	case OpExists:
		return ix.All()

	case OpEqual:
		if s, supported := ix.Equals(f.Value); supported {
			return s
		}
		return r.scanEquals(ix, f, source)

	default:
		return fieldindex.NewDocSet(r.dict)
	}
}

// scanEquals is the linear fallback for indexes that decline equality:
// walk the existence set and compare each document's current value.
func (r *Registry) scanEquals(ix fieldindex.Index, f Filter, source ValueSource) *fieldindex.DocSet {
	fallbackScans.WithLabelValues(f.Field).Inc()
	r.logger.WithField(f.Field).Debug("equality fallback scan")

	result := fieldindex.NewDocSet(r.dict)
	if source == nil {
		return result
	}
	for id := range ix.All().IDs() {
		if v, ok := source.Value(id, f.Field); ok && value.Equal(v, f.Value) {
			result.Add(id)
		}
	}
	return result
}
