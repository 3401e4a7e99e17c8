// Package metrics defines the Prometheus instruments exposed by the service
// on the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values recorded on AssessmentRequests.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeProviderError   = "provider_error"
)

// Status label value recorded on ProviderRequests when the upstream call
// fails before an HTTP status is available.
const StatusTransportError = "transport_error"

var (
	// AssessmentRequests counts generation requests by final outcome.
	AssessmentRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assessment_requests_total",
		Help: "Number of assessment generation requests by outcome.",
	}, []string{"outcome"})

	// ProviderRequests counts upstream model calls by HTTP status code.
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assessment_provider_requests_total",
		Help: "Number of upstream generation calls by HTTP status code.",
	}, []string{"status"})

	// ProviderRequestDuration observes upstream call latency. Model calls
	// routinely run far past the default bucket range, so the buckets grow
	// from 250ms out to roughly eight minutes.
	ProviderRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "assessment_provider_request_duration_seconds",
		Help:    "Latency of upstream generation calls.",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 12),
	})
)
