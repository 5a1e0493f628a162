package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry collects operational counters for the bar engine. It wraps its
// own prometheus.Registry so tests and embedders never fight over the
// default global one.
type Registry struct {
	reg *prometheus.Registry

	DrinksAdded   prometheus.Counter
	DrinksRemoved prometheus.Counter
	TabsClosed    prometheus.Counter
	AddsRejected  *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	added := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bar_drinks_added_total",
		Help: "Drinks added to tabs.",
	})
	removed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bar_drinks_removed_total",
		Help: "Drinks removed from tabs.",
	})
	closed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bar_tabs_closed_total",
		Help: "Tabs closed and settled.",
	})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bar_adds_rejected_total",
		Help: "Add requests rejected, by reason.",
	}, []string{"reason"})

	r.MustRegister(added, removed, closed, rejected)
	return &Registry{
		reg:           r,
		DrinksAdded:   added,
		DrinksRemoved: removed,
		TabsClosed:    closed,
		AddsRejected:  rejected,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
