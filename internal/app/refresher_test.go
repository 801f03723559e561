package app

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/five82/marquee/internal/app/mocks"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func TestRefresher_DisabledReturnsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	r := NewRefresher(fetcher, 0, time.Second, quietLogger())

	require.False(t, r.Enabled())
	require.NoError(t, r.Start(context.Background()))
}

func TestRefresher_FetchesOnEachTickWithTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	fetcher.EXPECT().FetchMovies(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		require.True(t, hasDeadline, "each refresh should carry the request timeout")
		if calls.Add(1) == 2 {
			cancel()
		}
		return nil
	}).MinTimes(2)

	r := NewRefresher(fetcher, 5*time.Millisecond, time.Second, quietLogger())
	err := r.Start(ctx)

	require.ErrorIs(t, err, context.Canceled)
	require.GreaterOrEqual(t, calls.Load(), int32(2))
}
