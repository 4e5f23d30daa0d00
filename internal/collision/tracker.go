package collision

import (
	"github.com/arloliu/stringlet/errs"
)

// Tracker detects repeated strings by content hash during encoding.
//
// Strings are grouped by hash, so distinct strings that share a hash are
// told apart by content and counted as collisions rather than duplicates.
type Tracker struct {
	seen       map[uint64][]string // Hash → distinct strings with that hash
	collisions int                 // Strings whose hash was already taken by another string
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen: make(map[uint64][]string),
	}
}

// Track records s under hash.
// Returns errs.ErrDuplicateString if s was tracked before; the tracker is
// unchanged in that case.
//
// Note: Hash collisions (different strings, same hash) are NOT errors here.
// They are counted and both strings are tracked.
func (t *Tracker) Track(s string, hash uint64) error {
	bucket := t.seen[hash]
	for _, existing := range bucket {
		if existing == s {
			return errs.ErrDuplicateString
		}
	}
	if len(bucket) > 0 {
		t.collisions++
	}

	t.seen[hash] = append(bucket, s)

	return nil
}

// Collisions returns the number of tracked strings whose hash was shared.
func (t *Tracker) Collisions() int {
	return t.collisions
}

// Reset clears all tracked strings and collision state.
// This allows reusing the tracker for encoding a new column.
func (t *Tracker) Reset() {
	// Clear maps but preserve capacity to avoid allocations
	clear(t.seen)
	t.collisions = 0
}
