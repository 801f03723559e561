package state

import (
	"sync"
	"time"

	"github.com/five82/marquee/internal/movies"
)

// Phase is the fetch lifecycle position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Snapshot represents the latest data available to the UI. Movies is only
// populated in PhaseSuccess and Message only in PhaseError.
type Snapshot struct {
	Phase      Phase
	Movies     []movies.Movie
	Message    string
	Generation uint64
	StartedAt  time.Time
	UpdatedAt  time.Time
}

// Loading reports whether a fetch is outstanding.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseLoading
}

// Store coordinates concurrent updates to the snapshot. The zero value is
// ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	subs     map[int]chan Snapshot
	nextSub  int
}

// Begin enters PhaseLoading, drops any previous error or list, and returns
// the generation that must be passed to Succeed or Fail.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot = Snapshot{
		Phase:      PhaseLoading,
		Generation: s.snapshot.Generation + 1,
		StartedAt:  now,
		UpdatedAt:  now,
	}
	s.publishLocked()
	return s.snapshot.Generation
}

// Succeed replaces the list wholesale. It is a no-op returning false when gen
// has been superseded by a later Begin.
func (s *Store) Succeed(gen uint64, list []movies.Movie) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	dup := cloneMovies(list)
	if dup == nil {
		dup = []movies.Movie{}
	}
	s.snapshot.Phase = PhaseSuccess
	s.snapshot.Movies = dup
	s.snapshot.Message = ""
	s.snapshot.UpdatedAt = time.Now()
	s.publishLocked()
	return true
}

// Fail records message for gen. Stale generations are ignored.
func (s *Store) Fail(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	s.snapshot.Phase = PhaseError
	s.snapshot.Movies = nil
	s.snapshot.Message = message
	s.snapshot.UpdatedAt = time.Now()
	s.publishLocked()
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Subscribe returns a channel that receives the latest snapshot after every
// transition. Slow readers only ever see the most recent value. The returned
// func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]chan Snapshot)
	}
	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	for _, ch := range s.subs {
		snap := s.copyLocked()
		select {
		case ch <- snap:
			continue
		default:
		}
		// Drop the stale value and retry once; we hold the lock so no other
		// publisher competes for the slot.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Store) copyLocked() Snapshot {
	snap := s.snapshot
	snap.Movies = cloneMovies(s.snapshot.Movies)
	if s.snapshot.Phase == PhaseSuccess && snap.Movies == nil {
		snap.Movies = []movies.Movie{}
	}
	return snap
}

func cloneMovies(list []movies.Movie) []movies.Movie {
	if len(list) == 0 {
		if list == nil {
			return nil
		}
		return []movies.Movie{}
	}
	dup := make([]movies.Movie, len(list))
	copy(dup, list)
	return dup
}
