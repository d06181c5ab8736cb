package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedBuildDuration records how long a full feed ranking pass takes.
	FeedBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "creaverse_feed_build_duration_seconds",
		Help:    "Feed ranking duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// FeedPostsRanked counts posts emitted per feed build, by tier of origin.
	FeedPostsRanked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creaverse_feed_posts_ranked_total",
		Help: "Total posts emitted into feeds by originating tier",
	}, []string{"tier"})

	// InviteRedemptions counts redemption attempts by outcome.
	InviteRedemptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creaverse_invite_redemptions_total",
		Help: "Total invite redemption attempts by outcome",
	}, []string{"outcome"})

	// InvitesIssued counts successfully issued invite codes.
	InvitesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creaverse_invites_issued_total",
		Help: "Total invite codes issued",
	})

	// InteractionsRecorded counts ledger writes by interaction kind.
	InteractionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creaverse_interactions_recorded_total",
		Help: "Total ledger interactions recorded by kind",
	}, []string{"kind"})

	// CacheRequests counts cache lookups by outcome (hit, miss, error).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creaverse_cache_requests_total",
		Help: "Total cache lookups by outcome",
	}, []string{"outcome"})

	// RedisErrors counts Redis command errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creaverse_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
