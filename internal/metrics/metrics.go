// Package metrics exposes Prometheus instruments for the analyze pipeline
// and the catalog client. They are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalyzeRequests counts completed analyses by resolved mood and classifier source.
	AnalyzeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmix_analyze_requests_total",
			Help: "Completed analyze requests by mood and classifier source",
		},
		[]string{"mood", "source"},
	)

	// AnalyzeDegraded counts analyses where the seed pool build failed.
	AnalyzeDegraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodmix_analyze_degraded_total",
			Help: "Analyze requests answered on the degraded path",
		},
	)

	// WidgetSource counts where the embed list came from.
	WidgetSource = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmix_widget_source_total",
			Help: "Widget lists by source (pool, toplist, featured, editorial, hardcoded)",
		},
		[]string{"source"},
	)

	// EstimatorFailures counts swallowed facial-emotion estimator errors.
	EstimatorFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodmix_estimator_failures_total",
			Help: "Emotion estimator calls that failed or produced no usable label",
		},
	)

	// CatalogRequests counts catalog GETs by endpoint and outcome.
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmix_catalog_requests_total",
			Help: "Catalog requests by endpoint and outcome (success, error, rejected)",
		},
		[]string{"endpoint", "outcome"},
	)

	// CatalogLatency observes catalog GET latency.
	CatalogLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodmix_catalog_request_duration_seconds",
			Help:    "Catalog request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CatalogTokenRefreshes counts client-credentials exchanges by outcome.
	CatalogTokenRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmix_catalog_token_refreshes_total",
			Help: "Client-credentials token exchanges by outcome",
		},
		[]string{"outcome"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodmix_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// ArtistCacheLookups counts ArtistIdCache hits and misses.
	ArtistCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmix_artist_cache_lookups_total",
			Help: "Artist ID cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	// WarmupJobs counts warm-up jobs by result.
	WarmupJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmix_warmup_jobs_total",
			Help: "Artist warm-up jobs by result (resolved, failed, dropped)",
		},
		[]string{"result"},
	)
)
