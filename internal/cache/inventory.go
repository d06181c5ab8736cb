package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserStatsKeyPrefix = "user:%d:stats"
	TrendingKeyName    = "feed:trending"
)

const (
	// UserStatsTTL is short because follower/post counts are derived
	// values; writes invalidate eagerly and the TTL is only a backstop.
	UserStatsTTL = 5 * time.Minute
	TrendingTTL  = 2 * time.Minute
)

func UserStatsKey(userID uint) string {
	return fmt.Sprintf(UserStatsKeyPrefix, userID)
}

func TrendingKey() string {
	return TrendingKeyName
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUserStats drops the cached derived counters for a user. Must be
// called in the same code path as any write that changes those counters.
func InvalidateUserStats(ctx context.Context, userID uint) {
	Invalidate(ctx, UserStatsKey(userID))
}

// InvalidateTrending drops the cached trending candidate scores. Called on
// every post, like, and comment write so derived scores cannot drift.
func InvalidateTrending(ctx context.Context) {
	Invalidate(ctx, TrendingKey())
}
