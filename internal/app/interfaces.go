package app

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/five82/marquee/internal/movies"
)

// MovieSource reads the full movie list from the read endpoint.
type MovieSource interface {
	FetchMovies(ctx context.Context) ([]movies.Movie, error)
}

// MovieSink posts one new movie to the write endpoint.
type MovieSink interface {
	AddMovie(ctx context.Context, movie movies.NewMovie) (movies.AddResult, error)
}

// Fetcher runs one complete fetch cycle against the store.
type Fetcher interface {
	FetchMovies(ctx context.Context) error
}
