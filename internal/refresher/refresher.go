package refresher

import (
	"context"
	"time"
)

// StatusTTL is the self-expiring safety net on the status key: a wedged
// run loses its lock after this long without progress.
const StatusTTL = 300 * time.Second

// LastRefreshTTL keeps the staleness signal around well past the data TTL.
const LastRefreshTTL = 24 * time.Hour

// ReplyCap bounds replies per comment regardless of the comment budget.
const ReplyCap = 5

// Summary reports a completed refresh.
type Summary struct {
	Success        bool   `json:"success"`
	Profile        string `json:"profile"`
	PostsCount     int    `json:"postsCount"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	Timestamp      string `json:"timestamp"`
}

// Status is the read-only view served by GET /refresh.
type Status struct {
	Status      string  `json:"status"`
	LastRefresh *string `json:"lastRefresh"`
}

type Client interface {
	// Run executes a full refresh. It fails fast with ErrConflict when
	// another run holds the status lock.
	Run(ctx context.Context) (*Summary, error)
	Status(ctx context.Context) (*Status, error)
}
