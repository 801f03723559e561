package devserver

import (
	"sort"
	"sync"

	"github.com/segmentio/ksuid"

	"github.com/five82/marquee/internal/movies"
)

// Entry is one stored movie. Key orders entries by insertion; EpisodeID
// numbers them for the results shape.
type Entry struct {
	Key       string
	EpisodeID int
	Movie     movies.NewMovie
}

// Catalog is an in-memory, process-lifetime movie collection.
type Catalog struct {
	mu          sync.RWMutex
	entries     map[string]Entry
	seq         ksuid.Sequence
	lastEpisode int
}

// NewCatalog returns a catalog holding seeds in the given order.
func NewCatalog(seeds []Seed) *Catalog {
	c := &Catalog{
		entries: make(map[string]Entry, len(seeds)),
		seq:     ksuid.Sequence{Seed: ksuid.New()},
	}
	for _, s := range seeds {
		c.insert(s.EpisodeID, s.Movie())
	}
	return c
}

// Add stores movie and returns its generated key.
func (c *Catalog) Add(movie movies.NewMovie) string {
	return c.insert(0, movie).Key
}

func (c *Catalog) insert(episode int, movie movies.NewMovie) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if episode <= 0 {
		episode = c.lastEpisode + 1
	}
	if episode > c.lastEpisode {
		c.lastEpisode = episode
	}
	entry := Entry{Key: c.nextKey(), EpisodeID: episode, Movie: movie}
	c.entries[entry.Key] = entry
	return entry
}

// nextKey hands out ascending keys. A sequence covers 65536 keys; after that
// a fresh seed continues from the current time.
func (c *Catalog) nextKey() string {
	id, err := c.seq.Next()
	if err != nil {
		c.seq = ksuid.Sequence{Seed: ksuid.New()}
		id, _ = c.seq.Next()
	}
	return id.String()
}

// List returns entries in insertion order.
func (c *Catalog) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of stored movies.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
