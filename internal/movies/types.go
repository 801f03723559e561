package movies

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Movie is the normalized record shown in the list.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	OpeningText string `json:"openingText"`
	ReleaseDate string `json:"releaseDate"`
}

// NewMovie is a record built locally before the backend assigns an id.
type NewMovie struct {
	Title       string `json:"title"`
	OpeningText string `json:"openingText"`
	ReleaseDate string `json:"releaseDate"`
}

// AddResult mirrors the write endpoint response. Name holds the generated key
// when the backend reports one.
type AddResult struct {
	Name string `json:"name"`
}

// Format selects how a read payload is interpreted.
type Format int

const (
	// FormatAuto picks FormatResults when a "results" member is present and
	// FormatKeyed otherwise.
	FormatAuto Format = iota
	// FormatResults is {"results": [{episode_id, title, opening_crawl, release_date}]}.
	FormatResults
	// FormatKeyed is {"<id>": {title, openingText, releaseDate}}.
	FormatKeyed
)

func (f Format) String() string {
	switch f {
	case FormatResults:
		return "results"
	case FormatKeyed:
		return "keyed"
	default:
		return "auto"
	}
}

// ParseFormat maps a config value onto a Format. Empty means auto.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return FormatAuto, nil
	case "results", "swapi":
		return FormatResults, nil
	case "keyed", "firebase":
		return FormatKeyed, nil
	}
	return FormatAuto, fmt.Errorf("unknown payload format %q", value)
}

// filmsResponse mirrors the swapi /films payload.
type filmsResponse struct {
	Results []film `json:"results"`
}

type film struct {
	EpisodeID    json.Number `json:"episode_id"`
	Title        string      `json:"title"`
	OpeningCrawl string      `json:"opening_crawl"`
	ReleaseDate  string      `json:"release_date"`
}

// keyedEntry is a single value of the keyed payload.
type keyedEntry struct {
	Title       string `json:"title"`
	OpeningText string `json:"openingText"`
	ReleaseDate string `json:"releaseDate"`
}

// Decode transforms a raw read payload into movies. The result is never nil
// on success so callers can tell an empty list apart from no data.
func Decode(format Format, data []byte) ([]Movie, error) {
	trimmed := bytes.TrimSpace(data)
	if format == FormatAuto {
		format = detectFormat(trimmed)
	}
	switch format {
	case FormatResults:
		return decodeResults(trimmed)
	default:
		return decodeKeyed(trimmed)
	}
}

func detectFormat(data []byte) Format {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return FormatKeyed
	}
	if _, ok := probe["results"]; ok {
		return FormatResults
	}
	return FormatKeyed
}

func decodeResults(data []byte) ([]Movie, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var payload filmsResponse
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	out := make([]Movie, 0, len(payload.Results))
	for _, f := range payload.Results {
		out = append(out, Movie{
			ID:          episodeID(f.EpisodeID),
			Title:       f.Title,
			OpeningText: f.OpeningCrawl,
			ReleaseDate: f.ReleaseDate,
		})
	}
	return out, nil
}

func decodeKeyed(data []byte) ([]Movie, error) {
	var payload map[string]keyedEntry
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	// A null body (empty collection) unmarshals into a nil map.
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Movie, 0, len(keys))
	for _, k := range keys {
		entry := payload[k]
		out = append(out, Movie{
			ID:          k,
			Title:       entry.Title,
			OpeningText: entry.OpeningText,
			ReleaseDate: entry.ReleaseDate,
		})
	}
	return out, nil
}

// episodeID renders numeric ids in base 10 and passes anything else through.
func episodeID(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	return n.String()
}
