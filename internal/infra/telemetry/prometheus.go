package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"huggiesd/internal/domain"
)

type PrometheusMetrics struct {
	toolCallDuration *prometheus.HistogramVec
	resourceReads    *prometheus.CounterVec
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		toolCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "huggiesd_tool_call_duration_seconds",
				Help:    "Duration of dispatched tool calls in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"tool", "status"},
		),
		resourceReads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "huggiesd_resource_reads_total",
				Help: "Total number of widget resource reads",
			},
			[]string{"status"},
		),
	}
}

func (p *PrometheusMetrics) ObserveToolCall(tool string, status domain.ToolCallStatus, duration time.Duration) {
	p.toolCallDuration.WithLabelValues(tool, string(status)).Observe(duration.Seconds())
}

func (p *PrometheusMetrics) ObserveResourceRead(found bool) {
	status := "found"
	if !found {
		status = "miss"
	}
	p.resourceReads.WithLabelValues(status).Inc()
}

var _ domain.Metrics = (*PrometheusMetrics)(nil)
