package app

import (
	"context"
	"log/slog"
	"time"
)

// Refresher re-runs the fetch on a fixed cadence. The first fetch belongs to
// the UI, so the loop waits one interval before its first run.
type Refresher struct {
	fetcher  Fetcher
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewRefresher(fetcher Fetcher, interval, timeout time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		fetcher:  fetcher,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Enabled reports whether a positive interval was configured.
func (r *Refresher) Enabled() bool {
	return r.interval > 0
}

// Start blocks until ctx is cancelled. It returns immediately when the
// refresher is disabled.
func (r *Refresher) Start(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	r.logger.Info("refresher started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	// Failures are already recorded in the store by the fetcher.
	_ = r.fetcher.FetchMovies(ctx)
}
