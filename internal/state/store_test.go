package state

import (
	"sync"
	"testing"
	"time"

	"github.com/five82/marquee/internal/movies"
)

func TestStore_ZeroValueIsIdleAndEmpty(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.Phase != PhaseIdle {
		t.Fatalf("Phase = %v, want idle", snap.Phase)
	}
	if snap.Loading() {
		t.Fatal("Loading() = true, want false before any fetch")
	}
	if snap.Display() != DisplayEmpty {
		t.Fatalf("Display = %v, want empty", snap.Display())
	}
}

func TestStore_BeginSucceedAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	gen := s.Begin()
	snap := s.Snapshot()
	if !snap.Loading() || snap.Generation != gen {
		t.Fatalf("after Begin: phase=%v gen=%d, want loading gen=%d", snap.Phase, snap.Generation, gen)
	}
	if snap.StartedAt.Before(before) {
		t.Fatalf("StartedAt = %v, want >= %v", snap.StartedAt, before)
	}

	list := []movies.Movie{{ID: "1", Title: "A New Hope"}, {ID: "2", Title: "Empire"}}
	if !s.Succeed(gen, list) {
		t.Fatal("Succeed returned false for the current generation")
	}
	list[0].Title = "mutated by caller"

	snap = s.Snapshot()
	if snap.Loading() {
		t.Fatal("Loading() = true after Succeed")
	}
	if snap.Phase != PhaseSuccess || len(snap.Movies) != 2 || snap.Movies[0].Title != "A New Hope" {
		t.Fatalf("snapshot = %#v, want success with 2 movies", snap)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Movies[0].ID = "999"
	if again := s.Snapshot(); again.Movies[0].ID != "1" {
		t.Fatalf("Snapshot should clone movies; got id %q want 1", again.Movies[0].ID)
	}
}

func TestStore_SucceedWithEmptyListIsSuccessNotError(t *testing.T) {
	var s Store
	gen := s.Begin()
	s.Succeed(gen, nil)

	snap := s.Snapshot()
	if snap.Phase != PhaseSuccess {
		t.Fatalf("Phase = %v, want success", snap.Phase)
	}
	if snap.Movies == nil || len(snap.Movies) != 0 {
		t.Fatalf("Movies = %#v, want empty non-nil", snap.Movies)
	}
	if snap.Display() != DisplayEmpty {
		t.Fatalf("Display = %v, want empty", snap.Display())
	}
}

func TestStore_FailClearsMoviesAndBeginClearsError(t *testing.T) {
	var s Store
	gen := s.Begin()
	s.Succeed(gen, []movies.Movie{{ID: "1"}})

	gen = s.Begin()
	if !s.Fail(gen, "Something went wrong") {
		t.Fatal("Fail returned false for the current generation")
	}
	snap := s.Snapshot()
	if snap.Phase != PhaseError || snap.Message != "Something went wrong" {
		t.Fatalf("snapshot = %#v, want error Something went wrong", snap)
	}
	if len(snap.Movies) != 0 {
		t.Fatalf("Movies = %#v, want cleared on error", snap.Movies)
	}
	if snap.Display() != DisplayError {
		t.Fatalf("Display = %v, want error", snap.Display())
	}

	s.Begin()
	snap = s.Snapshot()
	if snap.Message != "" || snap.Phase != PhaseLoading {
		t.Fatalf("after Begin: %#v, want loading with no message", snap)
	}
}

func TestStore_StaleGenerationsAreDiscarded(t *testing.T) {
	var s Store

	first := s.Begin()
	second := s.Begin()
	if second <= first {
		t.Fatalf("generations not increasing: %d then %d", first, second)
	}

	// The later request resolves first.
	if !s.Succeed(second, []movies.Movie{{ID: "new"}}) {
		t.Fatal("Succeed(second) returned false")
	}
	// The earlier request resolves last and must not overwrite.
	if s.Succeed(first, []movies.Movie{{ID: "old"}}) {
		t.Fatal("Succeed(first) returned true for a stale generation")
	}
	if s.Fail(first, "late failure") {
		t.Fatal("Fail(first) returned true for a stale generation")
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseSuccess || len(snap.Movies) != 1 || snap.Movies[0].ID != "new" {
		t.Fatalf("snapshot = %#v, want the second request's result", snap)
	}
}

func TestStore_StaleResultDoesNotEndLoading(t *testing.T) {
	var s Store
	first := s.Begin()
	s.Begin()
	s.Fail(first, "boom")
	if !s.Snapshot().Loading() {
		t.Fatal("Loading() = false, want the newer request still loading")
	}
}

func TestStore_SubscribeReceivesLatest(t *testing.T) {
	var s Store
	ch, cancel := s.Subscribe()
	defer cancel()

	gen := s.Begin()
	s.Succeed(gen, []movies.Movie{{ID: "1"}})

	// Slot holds only the newest value.
	select {
	case snap := <-ch:
		if snap.Phase != PhaseSuccess {
			t.Fatalf("received phase %v, want success", snap.Phase)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}
	select {
	case snap := <-ch:
		t.Fatalf("unexpected extra snapshot %#v", snap)
	default:
	}
}

func TestStore_UnsubscribeClosesChannel(t *testing.T) {
	var s Store
	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("channel still open after cancel")
	}
	// Publishing after unsubscribe must not panic.
	s.Begin()
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				gen := s.Begin()
				s.Succeed(gen, []movies.Movie{{ID: "x"}})
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()
	if s.Snapshot().Generation != 400 {
		t.Fatalf("Generation = %d, want 400", s.Snapshot().Generation)
	}
}
