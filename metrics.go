package vaultindex

import "github.com/prometheus/client_golang/prometheus"

var indexOps = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vaultindex",
	Subsystem: "registry",
	Name:      "index_ops",
}, []string{"field", "kind", "op"})

var fieldGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "vaultindex",
	Subsystem: "registry",
	Name:      "fields",
})

var fallbackScans = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vaultindex",
	Subsystem: "filter",
	Name:      "fallback_scans",
}, []string{"field"})

var filterCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "vaultindex",
	Subsystem: "filter",
	Name:      "cache_hits",
})

var filterCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "vaultindex",
	Subsystem: "filter",
	Name:      "cache_misses",
})

// Collectors returns every metric this package exposes, for registration
// with the host application's prometheus registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		indexOps,
		fieldGauge,
		fallbackScans,
		filterCacheHits,
		filterCacheMisses,
	}
}
