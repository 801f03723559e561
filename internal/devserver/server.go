package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/five82/marquee/internal/movies"
)

const (
	maxRequestBytes = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server answers the two read shapes marquee understands and accepts new
// movies on the keyed endpoint.
type Server struct {
	catalog *Catalog
	logger  *slog.Logger
}

func New(catalog *Catalog, logger *slog.Logger) *Server {
	return &Server{catalog: catalog, logger: logger}
}

// Handler returns the routed handler wrapped in request logging and CORS.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/api/films/", s.listFilms).Methods(http.MethodGet)
	r.HandleFunc("/movies.json", s.listMovies).Methods(http.MethodGet)
	r.HandleFunc("/movies.json", s.addMovie).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return corsHandler.Handler(r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dev server listening", "addr", addr, "movies", s.catalog.Len())
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("dev server stopped")
	return nil
}

type filmsPayload struct {
	Count   int           `json:"count"`
	Results []filmPayload `json:"results"`
}

type filmPayload struct {
	EpisodeID    int    `json:"episode_id"`
	Title        string `json:"title"`
	OpeningCrawl string `json:"opening_crawl"`
	ReleaseDate  string `json:"release_date"`
}

// listFilms handles GET /api/films/ in the results shape.
func (s *Server) listFilms(w http.ResponseWriter, r *http.Request) {
	entries := s.catalog.List()
	payload := filmsPayload{Count: len(entries), Results: make([]filmPayload, 0, len(entries))}
	for _, e := range entries {
		payload.Results = append(payload.Results, filmPayload{
			EpisodeID:    e.EpisodeID,
			Title:        e.Movie.Title,
			OpeningCrawl: e.Movie.OpeningText,
			ReleaseDate:  e.Movie.ReleaseDate,
		})
	}
	s.writeJSON(w, http.StatusOK, payload)
}

// listMovies handles GET /movies.json in the keyed shape. An empty
// collection is encoded as null.
func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	entries := s.catalog.List()
	if len(entries) == 0 {
		s.writeJSON(w, http.StatusOK, nil)
		return
	}
	payload := make(map[string]movies.NewMovie, len(entries))
	for _, e := range entries {
		payload[e.Key] = e.Movie
	}
	s.writeJSON(w, http.StatusOK, payload)
}

// addMovie handles POST /movies.json. Fields are stored as sent.
func (s *Server) addMovie(w http.ResponseWriter, r *http.Request) {
	var movie movies.NewMovie
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := decoder.Decode(&movie); err != nil {
		s.logger.Warn("rejecting movie", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	key := s.catalog.Add(movie)
	s.logger.Info("movie stored", "key", key, "title", movie.Title)
	s.writeJSON(w, http.StatusOK, movies.AddResult{Name: key})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

// responseWriter captures the status code for the request log.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
