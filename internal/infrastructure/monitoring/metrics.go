package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Sync metrics
	RunsTotal    *prometheus.CounterVec
	RunDuration  prometheus.Histogram
	StepDuration *prometheus.HistogramVec
	Records      *prometheus.GaugeVec
	LastSuccess  prometheus.Gauge
	TotalAssets  prometheus.Gauge
	Captures     *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates a new metrics collector on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfsync_runs_total",
				Help: "Sync runs by result",
			},
			[]string{"result"},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mfsync_run_duration_seconds",
				Help:    "Wall time of a sync run",
				Buckets: []float64{10, 20, 30, 45, 60, 90, 120, 180},
			},
		),
		StepDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mfsync_step_duration_seconds",
				Help:    "Wall time of each pipeline step",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
			},
			[]string{"step"},
		),
		Records: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mfsync_records",
				Help: "Records extracted in the last run",
			},
			[]string{"page", "strategy"},
		),
		LastSuccess: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mfsync_last_success_timestamp_seconds",
				Help: "Unix time of the last successful run",
			},
		),
		TotalAssets: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mfsync_total_assets_yen",
				Help: "Total assets reported by the last successful run",
			},
		),
		Captures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfsync_failure_captures_total",
				Help: "Failure diagnostics by kind and outcome",
			},
			[]string{"kind", "result"},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the registry for the node_exporter textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// RecordRun records the outcome of a sync run
func (m *Metrics) RecordRun(success bool, duration time.Duration) {
	result := "failure"
	if success {
		result = "success"
		m.LastSuccess.SetToCurrentTime()
	}
	m.RunsTotal.WithLabelValues(result).Inc()
	m.RunDuration.Observe(duration.Seconds())
}

// RecordRecords records how many records a page produced and how
func (m *Metrics) RecordRecords(page, strategy string, count int) {
	m.Records.WithLabelValues(page, strategy).Set(float64(count))
}

// RecordCapture records a failure diagnostic attempt
func (m *Metrics) RecordCapture(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Captures.WithLabelValues(kind, result).Inc()
}

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Timer measures step duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	step    string
}

// StartStep starts timing a pipeline step
func (m *Metrics) StartStep(step string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: m,
		step:    step,
	}
}

// Stop records the elapsed time and returns it
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	t.metrics.StepDuration.WithLabelValues(t.step).Observe(d.Seconds())
	return d
}
