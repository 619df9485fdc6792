package vaultindex

import (
	"golang.org/x/time/rate"

	"github.com/hupe1980/vaultindex/fieldindex"
)

type options struct {
	logger          *Logger
	defaultKind     fieldindex.Kind
	filterCacheSize int
	reindexLimit    rate.Limit
	reindexBurst    int
}

// Option configures Registry constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:          NoopLogger(),
		defaultKind:     fieldindex.KindOrdered,
		filterCacheSize: 128,
		reindexLimit:    rate.Inf,
	}
}

// WithLogger configures the structured logger. Nil restores the no-op
// default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithDefaultKind configures the index kind used for fields first seen
// through Add/Delete without prior registration. The default is
// fieldindex.KindOrdered.
func WithDefaultKind(k fieldindex.Kind) Option {
	return func(o *options) {
		o.defaultKind = k
	}
}

// WithFilterCacheSize configures the compiled-filter cache capacity.
// Zero disables caching.
func WithFilterCacheSize(n int) Option {
	return func(o *options) {
		o.filterCacheSize = n
	}
}

// WithReindexLimit throttles batch reindexing to limit mutations per
// second with the given burst. The default is unlimited.
//
// Bulk reindexing after a vault-wide change can otherwise starve
// interleaved query evaluation.
func WithReindexLimit(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.reindexLimit = limit
		o.reindexBurst = burst
	}
}
