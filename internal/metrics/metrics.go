// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lexilens"

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_active_requests",
			Help:      "Current number of in-flight HTTP requests",
		},
	)

	// Tasks and quota
	TasksSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_submitted_total",
			Help:      "Analysis tasks accepted for processing",
		},
	)

	TaskTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_transitions_total",
			Help:      "Task status transitions reported by the worker",
		},
		[]string{"status"},
	)

	QuotaRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_rejections_total",
			Help:      "Task submissions rejected by the daily limit",
		},
	)

	// Audio cache
	AudioCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_cache_lookups_total",
			Help:      "Audio cache lookups by tier and result",
		},
		[]string{"tier", "result"}, // url|bytes, hit|miss
	)

	AudioFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_fetches_total",
			Help:      "Upstream audio resolutions and downloads",
		},
		[]string{"kind", "result"}, // resolve|download, ok|error
	)

	AudioPrefetchItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_prefetch_items_total",
			Help:      "Words scheduled for background audio prefetch",
		},
	)
)
