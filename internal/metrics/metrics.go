// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

// Add-mood modes
const (
	ModeNew     = "new"
	ModeClone   = "clone"
	ModeReplace = "replace"
)

// Add-mood outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecipeLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_lookups_total",
			Help: "Random recipe lookups by result",
		},
		[]string{"result"},
	)

	MoodAdditionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_additions_total",
			Help: "Add-mood requests by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)
)

// RecordHTTPRequest records one served request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRecipeLookup counts a random recipe lookup
func RecordRecipeLookup(result string) {
	RecipeLookupsTotal.WithLabelValues(result).Inc()
}

// RecordMoodAddition counts an add-mood attempt
func RecordMoodAddition(mode, outcome string) {
	MoodAdditionsTotal.WithLabelValues(mode, outcome).Inc()
}
