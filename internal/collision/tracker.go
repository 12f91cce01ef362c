// Package collision tracks the IDs added to a set builder, rejecting exact
// duplicates and noting fingerprint collisions between distinct IDs.
package collision

import (
	"github.com/arloliu/bstid/errs"
)

// Tracker maps ID fingerprints to the encoded IDs that produced them.
// It is not safe for concurrent use.
type Tracker struct {
	entries      map[uint64][]string // fingerprint → encoded IDs
	count        int
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		entries: make(map[uint64][]string),
	}
}

// Track records an encoded ID with its fingerprint.
//
// Returns ErrDuplicateID if the same encoded ID was tracked before. Two
// different IDs sharing a fingerprint are not an error; the collision flag
// is set and both are kept.
func (t *Tracker) Track(encoded string, fingerprint uint64) error {
	existing := t.entries[fingerprint]
	for _, e := range existing {
		if e == encoded {
			return errs.ErrDuplicateID
		}
	}
	if len(existing) > 0 {
		t.hasCollision = true
	}

	t.entries[fingerprint] = append(existing, encoded)
	t.count++

	return nil
}

// Seen reports whether the encoded ID was tracked.
func (t *Tracker) Seen(encoded string, fingerprint uint64) bool {
	for _, e := range t.entries[fingerprint] {
		if e == encoded {
			return true
		}
	}

	return false
}

// HasCollision returns true if two distinct IDs shared a fingerprint.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of tracked IDs.
func (t *Tracker) Count() int {
	return t.count
}

// Reset clears all tracked IDs and the collision flag, keeping map capacity.
func (t *Tracker) Reset() {
	clear(t.entries)
	t.count = 0
	t.hasCollision = false
}
