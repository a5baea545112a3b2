package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for one pipeline instance.
type Metrics struct {
	registry *prometheus.Registry

	// Row metrics
	RowsProcessed prometheus.Counter
	RowDuration   prometheus.Histogram

	// Image metrics
	ImagesProcessed *prometheus.CounterVec
	ImageDuration   prometheus.Histogram

	// Pool metrics
	QueueDepth    prometheus.Gauge
	WorkersActive prometheus.Gauge
}

// NewMetrics creates a metrics collector backed by its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RowsProcessed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rowpipe_rows_processed_total",
				Help: "Total number of rows transformed",
			},
		),
		RowDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rowpipe_row_duration_seconds",
				Help:    "Row transform duration in seconds",
				Buckets: []float64{.000001, .00001, .0001, .001, .01, .1, 1},
			},
		),

		ImagesProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rowpipe_images_processed_total",
				Help: "Total number of images processed by outcome",
			},
			[]string{"status"},
		),
		ImageDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rowpipe_image_duration_seconds",
				Help:    "End-to-end image processing duration in seconds",
				Buckets: []float64{.001, .01, .05, .1, .5, 1, 5, 30},
			},
		),

		QueueDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rowpipe_queue_depth",
				Help: "Number of tasks currently queued",
			},
		),
		WorkersActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rowpipe_workers_active",
				Help: "Number of live worker goroutines",
			},
		),
	}
}

// RecordRow records one completed row transform.
func (m *Metrics) RecordRow(duration time.Duration) {
	m.RowsProcessed.Inc()
	m.RowDuration.Observe(duration.Seconds())
}

// RecordImage records one finished image run with its outcome status
// ("ok", "load_error" or "save_error").
func (m *Metrics) RecordImage(status string, duration time.Duration) {
	m.ImagesProcessed.WithLabelValues(status).Inc()
	m.ImageDuration.Observe(duration.Seconds())
}

// Gather returns the current state of every registered metric.
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}
