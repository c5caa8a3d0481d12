package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Evaluation sources.
const (
	SourceService = "service"
	SourceMock    = "mock"
	SourceCache   = "cache"
)

var (
	EvaluationsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "placement_evaluations_started_total",
		Help: "Total evaluations started",
	})

	EvaluationsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placement_evaluations_completed_total",
		Help: "Total evaluations completed, by source and readiness status",
	}, []string{"source", "status"})

	EvaluationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placement_evaluations_failed_total",
		Help: "Total evaluations failed, by reason",
	}, []string{"reason"})

	EvaluationFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "placement_evaluation_fallbacks_total",
		Help: "Evaluations answered by the local mock after a service error",
	})

	EvaluationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "placement_evaluation_duration_seconds",
		Help:    "Evaluation duration in seconds",
		Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2, 5, 10},
	}, []string{"source"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placement_cache_lookups_total",
		Help: "Evaluation cache lookups, by result",
	}, []string{"result"})
)

// IncEvaluationStarted increments the started counter.
func IncEvaluationStarted() {
	EvaluationsStarted.Inc()
}

// IncEvaluationCompleted counts a finished evaluation.
func IncEvaluationCompleted(source, status string) {
	EvaluationsCompleted.WithLabelValues(source, status).Inc()
}

// IncEvaluationFailed counts a failed evaluation.
func IncEvaluationFailed(reason string) {
	EvaluationsFailed.WithLabelValues(reason).Inc()
}

// IncFallback counts a mock fallback.
func IncFallback() {
	EvaluationFallbacks.Inc()
}

// ObserveEvaluationDuration records the time since start.
func ObserveEvaluationDuration(source string, start time.Time) {
	EvaluationDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

// ObserveCacheLookup records a cache hit or miss.
func ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(result).Inc()
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
