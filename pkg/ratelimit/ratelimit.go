package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out page requests against the upstream source. Instagram
// enforces its own throttling, so the adapter waits before every page
// fetch instead of firing them back to back.
type Pacer interface {
	Wait(ctx context.Context) error
}

type pacer struct {
	limiter *rate.Limiter
}

// New creates a pacer allowing one request per interval with the given burst.
// Example: New(2*time.Second, 3) -> one page every 2s, first 3 pages free.
func New(per time.Duration, burst int) Pacer {
	return &pacer{
		limiter: rate.NewLimiter(rate.Every(per), burst),
	}
}

func (p *pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Unlimited returns a pacer that never waits. The local export tool uses
// it because a one-shot bounded fetch does not need page spacing.
func Unlimited() Pacer {
	return unlimited{}
}

type unlimited struct{}

func (unlimited) Wait(context.Context) error { return nil }
