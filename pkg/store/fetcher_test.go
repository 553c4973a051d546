package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/umputun/gamedesk/pkg/domain"
)

func TestMain(m *testing.M) {
	// loader and delayed fetcher must not leave goroutines or timers behind
	goleak.VerifyTestMain(m)
}

func TestStaticFetcher(t *testing.T) {
	s, err := New([]domain.Article{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)

	articles, err := StaticFetcher{Store: s}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = StaticFetcher{Store: s}.Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDelayedFetcher(t *testing.T) {
	s, err := New([]domain.Article{{ID: "a"}})
	require.NoError(t, err)

	t.Run("waits for delay", func(t *testing.T) {
		f := DelayedFetcher{Fetcher: StaticFetcher{Store: s}, Delay: 30 * time.Millisecond}
		st := time.Now()
		articles, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.Len(t, articles, 1)
		assert.GreaterOrEqual(t, time.Since(st), 30*time.Millisecond)
	})

	t.Run("zero delay returns immediately", func(t *testing.T) {
		f := DelayedFetcher{Fetcher: StaticFetcher{Store: s}}
		articles, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.Len(t, articles, 1)
	})

	t.Run("cancelled view gets no data", func(t *testing.T) {
		f := DelayedFetcher{Fetcher: StaticFetcher{Store: s}, Delay: time.Second}
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		st := time.Now()
		articles, err := f.Fetch(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, articles)
		assert.Less(t, time.Since(st), 500*time.Millisecond)
	})
}
