package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/marquee/internal/movies"
)

// Submitter sends new movies to the write endpoint. It never reads or writes
// fetch state, so the list on screen is unchanged until the next fetch.
type Submitter struct {
	sink   MovieSink
	logger *slog.Logger
}

func NewSubmitter(sink MovieSink, logger *slog.Logger) *Submitter {
	return &Submitter{sink: sink, logger: logger}
}

// SubmitMovie issues exactly one POST for movie. The record is sent as given.
func (s *Submitter) SubmitMovie(ctx context.Context, movie movies.NewMovie) error {
	result, err := s.sink.AddMovie(ctx, movie)
	if err != nil {
		s.logger.Error("add movie failed", "title", movie.Title, "error", detail(err))
		return fmt.Errorf("add movie: %w", err)
	}
	s.logger.Info("movie added", "title", movie.Title, "key", result.Name)
	return nil
}
