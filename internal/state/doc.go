// Package state holds the single piece of mutable memory for the fetch
// lifecycle.
//
// # Overview
//
// Store is shared between the fetch controller, which writes transitions, and
// the UI, which reads snapshots. Exactly one Phase is current at a time:
//
//	Idle ──Begin──> Loading ──Succeed──> Success(movies)
//	                   │
//	                   └────Fail────> Error(message)
//
// Begin may be called from any phase. It clears the previous list and error.
//
// # Generations
//
// Begin returns a monotonically increasing generation. Succeed and Fail only
// apply when given the latest generation, so a slow request that resolves
// after a newer one has started is dropped instead of overwriting the display.
//
//	gen := store.Begin()
//	list, err := client.FetchMovies(ctx)
//	if err != nil {
//		store.Fail(gen, err.Error())
//		return
//	}
//	store.Succeed(gen, list)
//
// # Display policy
//
// Snapshot.Display is a pure function of the snapshot:
//
//  1. Loading
//  2. Error
//  3. List, when there is at least one movie
//  4. Empty ("No movies found.")
//
// # Concurrency Model
//
// A sync.RWMutex guards the snapshot. Snapshot returns a copy with its own
// movie slice. Subscribe hands out a one-slot channel per reader; a reader
// that falls behind only ever sees the newest snapshot.
package state
