package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render outcome label values.
const (
	statusOK    = "ok"
	statusError = "error"
)

// unknownLabel replaces a type or mode that did not parse, keeping label
// cardinality bounded by the enums.
const unknownLabel = "unknown"

// metrics holds the button render metrics.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

// newMetrics registers the render metrics with reg.
func newMetrics(reg prometheus.Registerer, buckets []float64) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "commonui",
			Subsystem: "button",
			Name:      "renders_total",
			Help:      "Total number of button renders by variant and outcome",
		}, []string{"type", "mode", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "commonui",
			Subsystem: "button",
			Name:      "render_duration_seconds",
			Help:      "Button render duration in seconds",
			Buckets:   buckets,
		}, []string{"type"}),
	}
}

// observe records one render.
func (m *metrics) observe(typ, mode string, seconds float64, err error) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	m.rendersTotal.WithLabelValues(typ, mode, status).Inc()
	m.renderDuration.WithLabelValues(typ).Observe(seconds)
}
