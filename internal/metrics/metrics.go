// Package metrics provides Prometheus metrics for the creatoros service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation kinds used as label values.
const (
	KindContent = "content"
	KindPlan    = "plan"
)

var (
	// GenerationRequestsTotal tracks calls to the generation service by outcome
	GenerationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatoros",
			Subsystem: "generation",
			Name:      "requests_total",
			Help:      "Total number of generation service calls by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// GenerationDuration tracks generation service latency in seconds
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "creatoros",
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "Duration of generation service calls in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"kind"},
	)

	// GenerationFallbacksTotal tracks unparseable output replaced by fallback content
	GenerationFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatoros",
			Subsystem: "generation",
			Name:      "fallbacks_total",
			Help:      "Total number of generation outputs replaced by fallback content",
		},
		[]string{"kind"},
	)

	// PlanItemsOffProfileTotal tracks plan items naming a platform the profile does not list
	PlanItemsOffProfileTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "creatoros",
			Subsystem: "plan",
			Name:      "items_off_profile_total",
			Help:      "Total number of plan items whose platform is not in the creator's platform list",
		},
	)

	// HTTPRequestsTotal tracks inbound API requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatoros",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks inbound API request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "creatoros",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of inbound HTTP requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "route"},
	)
)
