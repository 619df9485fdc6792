package vaultindex

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/time/rate"

	"github.com/hupe1980/vaultindex/fieldindex"
	"github.com/hupe1980/vaultindex/value"
)

// Registry owns one field index per field name, the dictionary that
// interns document identities, and the universal document population
// that backs the Everything and Identity indexes.
//
// Field indexes are created explicitly through CreateField or lazily,
// with the configured default kind, on first mutation of an unseen
// field. The kind of a field never changes after that.
//
// Each field's index is an independent unit of mutation with a single
// writer; reads may interleave with writes under the cooperative model
// the indexes assume. The registry itself (field map, population,
// revision) is safe for concurrent use.
type Registry struct {
	opts   options
	logger *Logger

	dict *fieldindex.Dictionary

	mu   sync.Mutex // guards docs writes
	docs *fieldindex.DocSet

	fields   *xsync.MapOf[string, fieldindex.Index]
	revision atomic.Uint64

	cache   *lru.Cache[uint64, *fieldindex.DocSet]
	limiter *rate.Limiter
}

// Stats describes the current registry shape.
type Stats struct {
	Documents int // Size of the universal population
	Fields    int // Number of live field indexes
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dict := fieldindex.NewDictionary()
	r := &Registry{
		opts:    o,
		logger:  o.logger,
		dict:    dict,
		docs:    fieldindex.NewDocSet(dict),
		fields:  xsync.NewMapOf[string, fieldindex.Index](),
		limiter: rate.NewLimiter(o.reindexLimit, o.reindexBurst),
	}

	if o.filterCacheSize > 0 {
		cache, err := lru.New[uint64, *fieldindex.DocSet](o.filterCacheSize)
		if err == nil {
			r.cache = cache
		}
	}

	return r
}

// Dictionary returns the shared identity dictionary.
func (r *Registry) Dictionary() *fieldindex.Dictionary {
	return r.dict
}

// Documents returns the live universal population set.
func (r *Registry) Documents() *fieldindex.DocSet {
	return r.docs
}

// AddDocument records a document in the universal population.
func (r *Registry) AddDocument(id string) {
	r.mu.Lock()
	r.docs.Add(id)
	r.mu.Unlock()
	r.bump()
}

// RemoveDocument removes a document from the universal population.
func (r *Registry) RemoveDocument(id string) {
	r.mu.Lock()
	r.docs.Remove(id)
	r.mu.Unlock()
	r.bump()
}

// CreateField registers a field with an explicit index kind. Registering
// the same field with the same kind again returns the existing index;
// a different kind returns ErrKindMismatch.
func (r *Registry) CreateField(name string, kind fieldindex.Kind) (fieldindex.Index, error) {
	ix, err := r.newIndex(kind)
	if err != nil {
		return nil, err
	}

	actual, loaded := r.fields.LoadOrStore(name, ix)
	if loaded {
		if actual.Kind() != kind {
			return nil, ErrKindMismatch
		}
		return actual, nil
	}

	fieldGauge.Inc()
	r.logger.Info("field registered", "field", name, "kind", kind.String())
	return ix, nil
}

// Field returns the index for a registered field.
func (r *Registry) Field(name string) (fieldindex.Index, bool) {
	return r.fields.Load(name)
}

// DropField tears down a field's index, reporting whether one existed.
// Eviction of fields no longer referenced by any document is at the
// caller's discretion; the registry never garbage-collects on its own.
func (r *Registry) DropField(name string) bool {
	_, existed := r.fields.LoadAndDelete(name)
	if existed {
		fieldGauge.Dec()
		r.bump()
		r.logger.Info("field dropped", "field", name)
	}
	return existed
}

// Fields returns the names of all registered fields.
func (r *Registry) Fields() []string {
	names := make([]string, 0, r.fields.Size())
	r.fields.Range(func(name string, _ fieldindex.Index) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Add routes a (document, value) association to the field's index,
// creating the index with the default kind on first sight of the field.
func (r *Registry) Add(field, id string, v value.Value) {
	ix := r.ensureField(field)
	ix.Add(id, v)
	indexOps.WithLabelValues(field, ix.Kind().String(), "add").Inc()
	r.bump()
	r.logger.WithField(field).WithDoc(id).Debug("indexed")
}

// Delete routes removal of a (document, value) association. Unknown
// fields and never-added pairs are no-ops.
func (r *Registry) Delete(field, id string, v value.Value) {
	ix, ok := r.fields.Load(field)
	if !ok {
		return
	}
	ix.Delete(id, v)
	indexOps.WithLabelValues(field, ix.Kind().String(), "delete").Inc()
	r.bump()
	r.logger.WithField(field).WithDoc(id).Debug("unindexed")
}

// Revision increments on every mutation. Compiled-filter cache entries
// are keyed by it, so stale results are never served.
func (r *Registry) Revision() uint64 {
	return r.revision.Load()
}

// GetStats returns statistics about the registry.
func (r *Registry) GetStats() Stats {
	return Stats{
		Documents: r.docs.Len(),
		Fields:    r.fields.Size(),
	}
}

func (r *Registry) bump() {
	r.revision.Add(1)
}

func (r *Registry) ensureField(name string) fieldindex.Index {
	if ix, ok := r.fields.Load(name); ok {
		return ix
	}

	ix, err := r.newIndex(r.opts.defaultKind)
	if err != nil {
		// Misconfigured default kind; ordered is the safe fallback.
		ix, _ = r.newIndex(fieldindex.KindOrdered)
	}
	actual, loaded := r.fields.LoadOrStore(name, ix)
	if loaded {
		return actual
	}
	fieldGauge.Inc()
	r.logger.Info("field registered", "field", name, "kind", ix.Kind().String())
	return ix
}

func (r *Registry) newIndex(kind fieldindex.Kind) (fieldindex.Index, error) {
	switch kind {
	case fieldindex.KindEverything:
		return fieldindex.NewEverything(func() *fieldindex.DocSet { return r.docs }), nil
	case fieldindex.KindIdentity:
		return fieldindex.NewIdentity(r.dict,
			func() *fieldindex.DocSet { return r.docs },
			func(id string) bool { return r.docs.Contains(id) },
		), nil
	case fieldindex.KindPresence:
		return fieldindex.NewPresence(r.dict), nil
	case fieldindex.KindOrdered:
		return fieldindex.NewOrdered(r.dict), nil
	default:
		return nil, ErrInvalidKind
	}
}
