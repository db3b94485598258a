// Package metrics holds the catalog's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Use sources.
const (
	SourceDirect = "direct"
	SourceSearch = "search"
)

// Metrics is the set of domain counters exported at /metrics.
type Metrics struct {
	ComponentUses *prometheus.CounterVec
	Searches      prometheus.Counter
	AccessDenied  prometheus.Counter
}

// New registers the catalog counters with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ComponentUses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_component_uses_total",
			Help: "Component uses recorded, by how the component was found.",
		}, []string{"source"}),
		Searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Component list requests carrying a search query.",
		}),
		AccessDenied: factory.NewCounter(prometheus.CounterOpts{
			Name: "catalog_access_denied_total",
			Help: "Requests refused by the access policy.",
		}),
	}
}

// ObserveUse counts one component use.
func (m *Metrics) ObserveUse(search bool) {
	source := SourceDirect
	if search {
		source = SourceSearch
	}
	m.ComponentUses.WithLabelValues(source).Inc()
}
