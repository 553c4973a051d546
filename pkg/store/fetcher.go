package store

import (
	"context"
	"time"

	"github.com/umputun/gamedesk/pkg/domain"
)

// Fetcher delivers the article list to a view. Implementations must honor ctx
// cancellation so a torn-down view never receives data.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Article, error)
}

// Lister provides the full article list in store order
type Lister interface {
	All() []domain.Article
}

// StaticFetcher returns the store content immediately
type StaticFetcher struct {
	Store Lister
}

// Fetch implements Fetcher
func (f StaticFetcher) Fetch(ctx context.Context) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Store.All(), nil
}

// DelayedFetcher wraps a fetcher with a fixed latency, used to demo loading states
type DelayedFetcher struct {
	Fetcher Fetcher
	Delay   time.Duration
}

// Fetch waits for the delay and calls the wrapped fetcher, or returns ctx.Err() if cancelled first
func (f DelayedFetcher) Fetch(ctx context.Context) ([]domain.Article, error) {
	if f.Delay > 0 {
		timer := time.NewTimer(f.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return f.Fetcher.Fetch(ctx)
}
