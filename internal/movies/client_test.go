package movies

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseEndpoint_DefaultsSchemeAndRejectsJunk(t *testing.T) {
	u, err := parseEndpoint("127.0.0.1:8080/api/films/")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "127.0.0.1:8080" || u.Path != "/api/films/" {
		t.Fatalf("parseEndpoint = %q, want http://127.0.0.1:8080/api/films/", u.String())
	}

	u, err = parseEndpoint("https://example.com/movies.json?x=1#frag")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.RawQuery != "x=1" || u.Fragment != "" {
		t.Fatalf("parseEndpoint = %q, want query kept and fragment dropped", u.String())
	}

	for _, bad := range []string{"", "   ", "ftp://example.com/x", "http://"} {
		if _, err := parseEndpoint(bad); err == nil {
			t.Fatalf("parseEndpoint(%q) returned nil error, want error", bad)
		}
	}
}

func TestNewClient_WriteURLOptional(t *testing.T) {
	c, err := NewClient(Options{ReadURL: "example.com/films"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.WriteURL() != "" {
		t.Fatalf("WriteURL = %q, want empty", c.WriteURL())
	}
	_, err = c.AddMovie(context.Background(), NewMovie{Title: "X"})
	if !errors.Is(err, ErrNoWriteEndpoint) {
		t.Fatalf("AddMovie error = %v, want ErrNoWriteEndpoint", err)
	}
}

func TestClient_FetchMoviesResultsShape(t *testing.T) {
	t.Parallel()

	var gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"count":1,"results":[{"episode_id":1,"title":"A New Hope","opening_crawl":"...","release_date":"1977-05-25","director":"George Lucas"}]}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{ReadURL: server.URL + "/api/films/"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.FetchMovies(ctx)
	if err != nil {
		t.Fatalf("FetchMovies returned error: %v", err)
	}
	want := Movie{ID: "1", Title: "A New Hope", OpeningText: "...", ReleaseDate: "1977-05-25"}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("FetchMovies = %#v, want [%#v]", got, want)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if !strings.HasPrefix(gotUserAgent, "marquee/") {
		t.Fatalf("User-Agent = %q, want marquee/*", gotUserAgent)
	}
}

func TestClient_FetchMoviesKeyedShape(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{
  "-Nb2": {"title": "Second", "openingText": "two", "releaseDate": "2001-01-01"},
  "-Na1": {"title": "First", "openingText": "one", "releaseDate": "2000-01-01"}
}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{ReadURL: server.URL + "/movies.json"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	got, err := c.FetchMovies(context.Background())
	if err != nil {
		t.Fatalf("FetchMovies returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FetchMovies len = %d, want 2", len(got))
	}
	if got[0].ID != "-Na1" || got[0].Title != "First" || got[0].OpeningText != "one" || got[0].ReleaseDate != "2000-01-01" {
		t.Fatalf("first movie = %#v, want -Na1/First", got[0])
	}
	if got[1].ID != "-Nb2" || got[1].Title != "Second" {
		t.Fatalf("second movie = %#v, want -Nb2/Second", got[1])
	}
}

func TestClient_StatusAndDecodeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			_, _ = io.WriteString(w, "{not-json")
		case "/missing":
			http.NotFound(w, r)
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	for _, tc := range []struct {
		path   string
		status int
	}{
		{"/missing", http.StatusNotFound},
		{"/boom", http.StatusInternalServerError},
	} {
		c, err := NewClient(Options{ReadURL: server.URL + tc.path})
		if err != nil {
			t.Fatalf("NewClient returned error: %v", err)
		}
		_, err = c.FetchMovies(context.Background())
		if err == nil || err.Error() != "Something went wrong" {
			t.Fatalf("FetchMovies(%s) error = %v, want Something went wrong", tc.path, err)
		}
		if !errors.Is(err, ErrSomethingWentWrong) {
			t.Fatalf("FetchMovies(%s) error should match ErrSomethingWentWrong", tc.path)
		}
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != tc.status {
			t.Fatalf("FetchMovies(%s) error = %#v, want StatusError %d", tc.path, err, tc.status)
		}
		if !strings.Contains(statusErr.Detail(), "returned status") {
			t.Fatalf("Detail = %q, want it to mention the status", statusErr.Detail())
		}
	}

	c, err := NewClient(Options{ReadURL: server.URL + "/broken"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchMovies(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchMovies error = %v, want decode response error", err)
	}
}

func TestClient_FetchMoviesTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(Options{ReadURL: url, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchMovies(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("FetchMovies error = %v, want execute request error", err)
	}
}

func TestClient_AddMoviePostsJSONOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var gotMethod, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = io.WriteString(w, `{"name":"-Nnew"}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{ReadURL: server.URL + "/movies.json", WriteURL: server.URL + "/movies.json"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	res, err := c.AddMovie(context.Background(), NewMovie{Title: "X", OpeningText: "Y", ReleaseDate: "Z"})
	if err != nil {
		t.Fatalf("AddMovie returned error: %v", err)
	}
	if res.Name != "-Nnew" {
		t.Fatalf("AddMovie name = %q, want -Nnew", res.Name)
	}
	if calls.Load() != 1 {
		t.Fatalf("server calls = %d, want 1", calls.Load())
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %s, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	want := map[string]any{"title": "X", "openingText": "Y", "releaseDate": "Z"}
	if len(gotBody) != len(want) {
		t.Fatalf("body = %#v, want %#v", gotBody, want)
	}
	for k, v := range want {
		if gotBody[k] != v {
			t.Fatalf("body[%q] = %v, want %v", k, gotBody[k], v)
		}
	}
}

func TestClient_AddMovieToleratesOpaqueResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{ReadURL: server.URL, WriteURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	res, err := c.AddMovie(context.Background(), NewMovie{})
	if err != nil {
		t.Fatalf("AddMovie returned error: %v", err)
	}
	if res.Name != "" {
		t.Fatalf("AddMovie name = %q, want empty", res.Name)
	}
}

func TestClient_AddMovieStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{ReadURL: server.URL, WriteURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.AddMovie(context.Background(), NewMovie{Title: "X"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusForbidden || statusErr.Method != http.MethodPost {
		t.Fatalf("AddMovie error = %v, want POST StatusError 403", err)
	}
}
