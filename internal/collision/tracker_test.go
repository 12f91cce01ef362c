package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bstid/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("\x00\x04\xb0", 0x1234567890abcdef))
	require.NoError(t, tracker.Track("\x00\x05\xb0", 0xfedcba0987654321))
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.True(t, tracker.Seen("\x00\x04\xb0", 0x1234567890abcdef))
	require.False(t, tracker.Seen("\x00\x04\xb0", 0xfedcba0987654321))
}

func TestTracker_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("\x00\x04\xb0", 1))
	err := tracker.Track("\x00\x04\xb0", 1)
	require.ErrorIs(t, err, errs.ErrDuplicateID)
	require.ErrorIs(t, err, errs.ErrFormat)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("a", 42))
	require.NoError(t, tracker.Track("b", 42))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	// duplicates are still found behind a collision
	require.ErrorIs(t, tracker.Track("a", 42), errs.ErrDuplicateID)
	require.ErrorIs(t, tracker.Track("b", 42), errs.ErrDuplicateID)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", 42))
	require.NoError(t, tracker.Track("b", 42))

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.False(t, tracker.Seen("a", 42))
	require.NoError(t, tracker.Track("a", 42))
}
