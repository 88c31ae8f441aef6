package jobqueue

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

const (
	metricsNamespace = "gnsync"
	metricsSubsystem = "jobs"
)

// Metrics holds the job queue Prometheus metrics. There is no scrape
// endpoint; WriteTextfile exports them for the node exporter textfile
// collector.
type Metrics struct {
	registry *prometheus.Registry

	EnqueuedTotal   *prometheus.CounterVec
	FinishedTotal   *prometheus.CounterVec
	RetriedTotal    *prometheus.CounterVec
	DurationSeconds *prometheus.HistogramVec
	Running         prometheus.Gauge
}

// NewMetrics creates the metrics on a dedicated registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EnqueuedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "enqueued_total",
			Help:      "Total number of sync jobs enqueued",
		}, []string{"family"}),
		FinishedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "finished_total",
			Help:      "Total number of sync jobs reaching a terminal status",
		}, []string{"family", "status"}),
		RetriedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "retried_total",
			Help:      "Total number of failed runs put back in the queue",
		}, []string{"family"}),
		DurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "duration_seconds",
			Help:      "Duration of sync job runs",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
		}, []string{"family"}),
		Running: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "running",
			Help:      "Number of sync jobs currently running",
		}),
	}
}

// Registry exposes the registry for tests and exporters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current values to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func (m *Metrics) enqueued(family domain.JobFamily) {
	if m == nil {
		return
	}
	m.EnqueuedTotal.WithLabelValues(string(family)).Inc()
}

func (m *Metrics) finished(family domain.JobFamily, status domain.JobStatus) {
	if m == nil {
		return
	}
	m.FinishedTotal.WithLabelValues(string(family), string(status)).Inc()
}

func (m *Metrics) retried(family domain.JobFamily) {
	if m == nil {
		return
	}
	m.RetriedTotal.WithLabelValues(string(family)).Inc()
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.Running.Inc()
}

func (m *Metrics) stopped(family domain.JobFamily, seconds float64) {
	if m == nil {
		return
	}
	m.Running.Dec()
	m.DurationSeconds.WithLabelValues(string(family)).Observe(seconds)
}
