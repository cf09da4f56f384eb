package anilist

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for upstream request metrics. Bounded set to keep
// cardinality low.
const (
	outcomeOK          = "ok"
	outcomeError       = "error"
	outcomeNotFound    = "not_found"
	outcomeRateLimited = "rate_limited"
)

var (
	// requestsTotal counts upstream GraphQL calls by logical operation and
	// outcome. Retried attempts count once, with the final outcome.
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anilist_requests_total",
			Help: "Total number of AniList upstream requests.",
		},
		[]string{"operation", "outcome"},
	)

	// retriesTotal counts rate-limit waits taken before the single retry.
	retriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anilist_rate_limit_retries_total",
			Help: "Total number of retries performed after a 429 response.",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, retriesTotal)
}
