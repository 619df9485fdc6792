package vaultindex

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vaultindex/value"
)

// Mutation is one (document, field, value) change in a batch reindex.
type Mutation struct {
	Doc    string
	Field  string
	Value  value.Value
	Delete bool
}

// Del marks a mutation as a deletion of the pair.
func Del(doc, field string, v value.Value) Mutation {
	return Mutation{Doc: doc, Field: field, Value: v, Delete: true}
}

// Put records the pair.
func Put(doc, field string, v value.Value) Mutation {
	return Mutation{Doc: doc, Field: field, Value: v}
}

// ApplyBatch applies many mutations, grouped by field so each field's
// index keeps a single writer, with fields processed in parallel (fields
// never share index state). Mutation order within one field is
// preserved, so delete-old-then-add-new sequences behave as they would
// applied one by one.
//
// The configured reindex limit throttles the overall mutation rate;
// cancellation of ctx stops between mutations and returns the context
// error.
func (r *Registry) ApplyBatch(ctx context.Context, muts []Mutation) error {
	if len(muts) == 0 {
		return nil
	}

	byField := make(map[string][]Mutation)
	for _, m := range muts {
		byField[m.Field] = append(byField[m.Field], m)
	}

	g, ctx := errgroup.WithContext(ctx)
	for field, ms := range byField {
		g.Go(func() error {
			for _, m := range ms {
				if err := r.limiter.Wait(ctx); err != nil {
					return err
				}
				if m.Delete {
					r.Delete(field, m.Doc, m.Value)
				} else {
					r.Add(field, m.Doc, m.Value)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	r.logger.Info("batch applied", "mutations", len(muts), "fields", len(byField))
	return err
}
