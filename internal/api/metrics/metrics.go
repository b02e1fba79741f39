// Package metrics defines and registers the custom Prometheus metrics of the
// movie social network API. HTTP request metrics come from echoprometheus;
// this package only holds the domain counters and the upstream latency
// histogram.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moviesn"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "reviewer" or "casual"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// ReviewsCreatedTotal counts persisted reviews.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews created.",
	},
)

// FavoritesTotal counts favorite mutations.
// Label:
//   - op: "added", "duplicate" or "removed"
var FavoritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_total",
		Help:      "Total number of favorite mutations, by operation.",
	},
	[]string{"op"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the movie metadata service.
// Labels:
//   - endpoint: "search" or "details"
//   - outcome: "ok" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the movie metadata service.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRequestDuration measures round-trip time to the movie metadata service.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the movie metadata service.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)
