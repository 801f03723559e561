package movies

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Source reads the movie list.
type Source interface {
	FetchMovies(ctx context.Context) ([]Movie, error)
}

// Sink writes a new movie.
type Sink interface {
	AddMovie(ctx context.Context, movie NewMovie) (AddResult, error)
}

// Ensure Client implements Source and Sink at compile time.
var (
	_ Source = (*Client)(nil)
	_ Sink   = (*Client)(nil)
)

// ErrSomethingWentWrong is what a non-2xx response surfaces as.
var ErrSomethingWentWrong = errors.New("Something went wrong")

// ErrNoWriteEndpoint is returned by AddMovie when no write URL is configured.
var ErrNoWriteEndpoint = errors.New("write endpoint not configured")

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return ErrSomethingWentWrong.Error()
}

// Is lets errors.Is(err, ErrSomethingWentWrong) match.
func (e *StatusError) Is(target error) bool {
	return target == ErrSomethingWentWrong
}

// Detail describes the failed request for logs.
func (e *StatusError) Detail() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.URL, e.StatusCode)
}

const (
	defaultUserAgent = "marquee/0.1"
	defaultTimeout   = 10 * time.Second
	maxBodyBytes     = 8 << 20
)

// Options configure a Client.
type Options struct {
	ReadURL    string
	WriteURL   string // empty disables AddMovie
	Format     Format
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client // overrides Timeout when set
}

// Client talks to the read and write endpoints.
type Client struct {
	readURL   *url.URL
	writeURL  *url.URL
	format    Format
	http      *http.Client
	userAgent string
}

// NewClient validates the endpoints and builds a Client.
func NewClient(opts Options) (*Client, error) {
	readURL, err := parseEndpoint(opts.ReadURL)
	if err != nil {
		return nil, fmt.Errorf("read url: %w", err)
	}
	var writeURL *url.URL
	if strings.TrimSpace(opts.WriteURL) != "" {
		writeURL, err = parseEndpoint(opts.WriteURL)
		if err != nil {
			return nil, fmt.Errorf("write url: %w", err)
		}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		readURL:   readURL,
		writeURL:  writeURL,
		format:    opts.Format,
		http:      httpClient,
		userAgent: userAgent,
	}, nil
}

// ReadURL returns the configured read endpoint.
func (c *Client) ReadURL() string {
	return c.readURL.String()
}

// WriteURL returns the configured write endpoint, or "" when disabled.
func (c *Client) WriteURL() string {
	if c.writeURL == nil {
		return ""
	}
	return c.writeURL.String()
}

// FetchMovies performs one GET against the read endpoint and normalizes the
// payload.
func (c *Client) FetchMovies(ctx context.Context) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := c.do(ctx, http.MethodGet, c.readURL, nil)
	if err != nil {
		return nil, err
	}
	return Decode(c.format, body)
}

// AddMovie posts movie as JSON to the write endpoint. The response body is
// read but only its optional key is kept.
func (c *Client) AddMovie(ctx context.Context, movie NewMovie) (AddResult, error) {
	if c == nil {
		return AddResult{}, fmt.Errorf("client is nil")
	}
	if c.writeURL == nil {
		return AddResult{}, ErrNoWriteEndpoint
	}
	payload, err := json.Marshal(movie)
	if err != nil {
		return AddResult{}, fmt.Errorf("encode movie: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, c.writeURL, payload)
	if err != nil {
		return AddResult{}, err
	}
	var result AddResult
	_ = json.Unmarshal(body, &result)
	return result, nil
}

func (c *Client) do(ctx context.Context, method string, target *url.URL, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, URL: target.String(), StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func parseEndpoint(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("endpoint is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}
	u.Fragment = ""
	return u, nil
}
