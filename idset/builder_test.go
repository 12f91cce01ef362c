package idset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bstid"
	"github.com/arloliu/bstid/errs"
)

func TestBuilder(t *testing.T) {
	b, err := NewBuilder(WithCapacity(8))
	require.NoError(t, err)

	for _, id := range ids("101", "0", "101", "1", "0") {
		require.NoError(t, b.Add(id))
	}
	require.Equal(t, 3, b.Len())
	require.False(t, b.HasCollision())
	require.True(t, b.Contains(bstid.MustParseBits("101")))
	require.False(t, b.Contains(bstid.MustParseBits("10")))

	n := b.Len()
	s := b.Build()
	require.Equal(t, n, s.Len())
	require.Equal(t, []string{"0", "1", "101"}, strs(slices.Collect(s.All())))

	// the builder is reusable after Build
	require.Equal(t, 0, b.Len())
	require.NoError(t, b.Add(bstid.MustParseBits("101")))
	require.Equal(t, 1, b.Len())
	require.Equal(t, 3, s.Len())
}

func TestBuilder_RejectDuplicates(t *testing.T) {
	b, err := NewBuilder(WithRejectDuplicates())
	require.NoError(t, err)

	require.NoError(t, b.Add(bstid.MustParseBits("0110")))
	require.NoError(t, b.Add(bstid.MustParseBits("011")))

	err = b.Add(bstid.MustParseBits("0110"))
	require.ErrorIs(t, err, errs.ErrDuplicateID)
	require.Equal(t, 2, b.Len())

	// same key bytes with a different length is a different ID
	require.NoError(t, b.Add(bstid.MustParseBits("01100")))
	require.Equal(t, 3, b.Len())
	require.Equal(t, b.Len(), b.Build().Len())
}
