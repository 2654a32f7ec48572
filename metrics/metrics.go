// Package metrics exposes Prometheus counters for assistant operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters updated by the service layer.
type Metrics struct {
	ChatRequests      *prometheus.CounterVec
	ChecklistRequests *prometheus.CounterVec
	BackendFailures   *prometheus.CounterVec
}

// New registers the assistant counters with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChatRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_chat_requests_total",
			Help: "Chat requests by model mode and outcome.",
		}, []string{"mode", "outcome"}),
		ChecklistRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_checklist_requests_total",
			Help: "Checklist requests by source (static or model) and outcome.",
		}, []string{"source", "outcome"}),
		BackendFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_backend_failures_total",
			Help: "Backend model call failures by error kind.",
		}, []string{"kind"}),
	}
}
