package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the reporting API metrics
type Metrics struct {
	// HTTP metrics
	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	ErrorTotal      *prometheus.CounterVec

	// Report metrics
	ReportLatency   *prometheus.HistogramVec
	ReportErrors    *prometheus.CounterVec
	ReportCacheHits *prometheus.CounterVec
	ReportRows      *prometheus.GaugeVec

	// Database metrics
	DatabaseConnections prometheus.Gauge
}

// NewMetrics creates all metrics and registers them with reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		ErrorTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Total number of HTTP errors",
		}, []string{"method", "path", "type"}),

		ReportLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "query_duration_seconds",
			Help:      "Duration of report queries",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"report"}),
		ReportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "query_errors_total",
			Help:      "Total number of failed report queries",
		}, []string{"report"}),
		ReportCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "cache_hits_total",
			Help:      "Total number of reports served from cache",
		}, []string{"report"}),
		ReportRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "rows",
			Help:      "Number of rows returned by the last report query",
		}, []string{"report"}),

		DatabaseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "open_connections",
			Help:      "Current number of open database connections",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.RequestDuration,
			m.RequestTotal,
			m.ErrorTotal,
			m.ReportLatency,
			m.ReportErrors,
			m.ReportCacheHits,
			m.ReportRows,
			m.DatabaseConnections,
		)
	}

	return m
}

// New creates unregistered metrics, for tests
func New(namespace string) *Metrics {
	return NewMetrics(namespace, nil)
}
