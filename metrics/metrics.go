package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innotech_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "innotech_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "innotech_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innotech_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// TeamsFormed counts successfully formed teams
	TeamsFormed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "innotech_teams_formed_total",
			Help: "Total number of teams formed",
		},
	)

	// EmailsSent counts delivered confirmation emails
	EmailsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "innotech_emails_sent_total",
			Help: "Total number of confirmation emails sent",
		},
	)

	// EmailsFailed counts confirmation emails that could not be delivered
	EmailsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "innotech_emails_failed_total",
			Help: "Total number of confirmation emails that failed",
		},
	)

	// RosterLookupDuration measures roll number lookup duration
	RosterLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "innotech_roster_lookup_duration_seconds",
			Help:    "Roster lookup duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RosterCacheHits counts roster lookups answered from cache
	RosterCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "innotech_roster_cache_hits_total",
			Help: "Total number of roster lookups served from cache",
		},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "innotech_database_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "innotech_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "innotech_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// TrackDatabaseOperation records how long a database operation took. Intended
// to be deferred with the operation's start time:
//
//	defer metrics.TrackDatabaseOperation("create", "teams", time.Now())
func TrackDatabaseOperation(operation, table string, start time.Time) {
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
