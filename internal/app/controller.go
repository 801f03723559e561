package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/marquee/internal/movies"
	"github.com/five82/marquee/internal/state"
)

// Controller drives the fetch lifecycle. Every outcome lands in the store;
// the errors it returns are informational.
type Controller struct {
	store  *state.Store
	source MovieSource
	logger *slog.Logger
}

func NewController(store *state.Store, source MovieSource, logger *slog.Logger) *Controller {
	return &Controller{
		store:  store,
		source: source,
		logger: logger,
	}
}

// Start moves the store into Loading and returns the generation the caller
// must hand to Resolve.
func (c *Controller) Start() uint64 {
	gen := c.store.Begin()
	c.logger.Debug("fetch started", "generation", gen)
	return gen
}

// Resolve performs the read request and records its outcome for gen. Results
// for a generation that has since been superseded are dropped.
func (c *Controller) Resolve(ctx context.Context, gen uint64) error {
	started := time.Now()
	list, err := c.source.FetchMovies(ctx)
	if err != nil {
		message := FailureMessage(err)
		applied := c.store.Fail(gen, message)
		c.logger.Error("fetch failed",
			"generation", gen,
			"error", detail(err),
			"applied", applied,
		)
		return fmt.Errorf("fetch movies: %w", err)
	}

	if !c.store.Succeed(gen, list) {
		c.logger.Debug("discarding stale fetch", "generation", gen)
		return nil
	}
	c.logger.Info("fetch complete",
		"generation", gen,
		"count", len(list),
		"duration", time.Since(started).Round(time.Millisecond),
	)
	return nil
}

// FetchMovies runs Start and Resolve back to back.
func (c *Controller) FetchMovies(ctx context.Context) error {
	return c.Resolve(ctx, c.Start())
}

// FailureMessage is the text shown to the user for a failed fetch. Any
// non-2xx status reads "Something went wrong"; other failures keep their own
// description.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, movies.ErrSomethingWentWrong) {
		return movies.ErrSomethingWentWrong.Error()
	}
	return err.Error()
}

func detail(err error) string {
	var statusErr *movies.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Detail()
	}
	return err.Error()
}
