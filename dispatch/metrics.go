package dispatch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK                = "ok"
	outcomeUnknownCapability = "unknown_capability"
	outcomeInvalidInput      = "invalid_input"
	outcomeBackendError      = "backend_error"

	// Names that are not registered share one label value.
	unknownCapabilityLabel = "unknown"
)

// Metrics counts dispatch outcomes and times backend calls.
type Metrics struct {
	requests *prometheus.CounterVec
	backend  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chart_mcp",
			Name:      "dispatch_total",
			Help:      "Chart dispatches by capability and outcome.",
		}, []string{"capability", "outcome"}),
		backend: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chart_mcp",
			Name:      "backend_duration_seconds",
			Help:      "Latency of rendering backend calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"capability"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.backend)
	}
	return m
}

func (m *Metrics) observe(capability, outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(capability, outcome).Inc()
}

func (m *Metrics) observeBackend(capability string, d time.Duration) {
	if m == nil {
		return
	}
	m.backend.WithLabelValues(capability).Observe(d.Seconds())
}
