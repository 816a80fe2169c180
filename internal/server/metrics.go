package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Operation label values.
const (
	opGenerate = "generate"
	opDownload = "download"
)

// Result label values.
const (
	resultSuccess     = "success"
	resultInvalid     = "invalid"
	resultServerError = "error"
)

type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	archiveBytes    prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tfscaffold",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of generation requests by operation and result",
			},
			[]string{"operation", "result"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tfscaffold",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Duration of generation requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"operation"},
		),
		archiveBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "tfscaffold",
				Subsystem: "archive",
				Name:      "size_bytes",
				Help:      "Size of generated project archives in bytes",
				Buckets:   prometheus.ExponentialBuckets(1024, 2, 10), // 1KiB to ~512KiB
			},
		),
	}

	reg.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.archiveBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observe(operation, result string, seconds float64) {
	m.requestsTotal.WithLabelValues(operation, result).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(seconds)
}
