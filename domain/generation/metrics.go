package generation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lotaya_generation_requests_total",
		Help: "Generation requests by operation and outcome",
	}, []string{"operation", "outcome"})

	Duration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lotaya_generation_duration_seconds",
		Help:    "Time spent serving a generation request",
		Buckets: []float64{0.05, 0.25, 0.5, 1, 2, 3, 4, 5, 10},
	}, []string{"operation"})

	JobsPersisted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lotaya_jobs_persisted_total",
		Help: "Generation jobs written to the job store",
	}, []string{"type"})
)

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)
