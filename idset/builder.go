package idset

import (
	"slices"

	"github.com/arloliu/bstid"
	"github.com/arloliu/bstid/internal/collision"
	"github.com/arloliu/bstid/internal/hash"
	"github.com/arloliu/bstid/internal/options"
)

// Builder collects IDs for a Set, tracking duplicates as they arrive.
//
// By default duplicates are dropped silently. WithRejectDuplicates makes
// Add fail with ErrDuplicateID instead.
//
// Note: The Builder is NOT thread-safe.
type Builder struct {
	ids              []bstid.ID
	tracker          *collision.Tracker
	rejectDuplicates bool
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*Builder]

// WithRejectDuplicates makes Add return ErrDuplicateID for an ID already added.
func WithRejectDuplicates() BuilderOption {
	return options.NoError(func(b *Builder) {
		b.rejectDuplicates = true
	})
}

// WithCapacity preallocates room for n IDs.
func WithCapacity(n int) BuilderOption {
	return options.NoError(func(b *Builder) {
		b.ids = slices.Grow(b.ids, n)
	})
}

// NewBuilder creates an empty builder.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{tracker: collision.NewTracker()}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Contains reports whether id was added since the last Build.
func (b *Builder) Contains(id bstid.ID) bool {
	key := id.Key()
	return b.tracker.Seen(string(appendEntry(nil, id, key, littleEndian)), hash.Key(key, id.Len()))
}

// Add appends id. A duplicate is skipped, or rejected with ErrDuplicateID
// when the builder was created with WithRejectDuplicates.
func (b *Builder) Add(id bstid.ID) error {
	key := id.Key()
	encoded := string(appendEntry(nil, id, key, littleEndian))
	if err := b.tracker.Track(encoded, hash.Key(key, id.Len())); err != nil {
		if b.rejectDuplicates {
			return err
		}

		return nil
	}
	b.ids = append(b.ids, id)

	return nil
}

// Len returns the number of distinct IDs added so far.
func (b *Builder) Len() int {
	return b.tracker.Count()
}

// HasCollision reports whether two distinct IDs shared a fingerprint.
// Collisions never lose IDs; the flag is informational.
func (b *Builder) HasCollision() bool {
	return b.tracker.HasCollision()
}

// Build returns the sorted set and resets the builder for reuse.
func (b *Builder) Build() *Set {
	ids := b.ids
	slices.SortFunc(ids, bstid.ID.Compare)

	b.ids = nil
	b.tracker.Reset()

	return fromSorted(ids)
}
