package bstid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
	"github.com/arloliu/bstid/section"
)

func TestMarshalKey_RoundTrip(t *testing.T) {
	zoom := format.NewZoom(15, 15, 10, 20)
	id, err := Encode(139.75, 35.68, 15, 1747839600, 15, 15, 10, 20)
	require.NoError(t, err)

	data, err := id.MarshalKey(zoom)
	require.NoError(t, err)
	require.Len(t, data, section.KeyHeaderSize+8)
	require.Equal(t, id.Key(), data[section.KeyHeaderSize:])

	got, gotZoom, err := UnmarshalKey(data)
	require.NoError(t, err)
	require.True(t, id.Equal(got))
	require.Equal(t, zoom, gotZoom)

	// the zoom travels with the key, so decoding needs no side channel
	p, err := DefaultCodec().Decode(got, gotZoom)
	require.NoError(t, err)
	require.InDelta(t, 139.75, p.X, 360.0/(1<<15))
}

func TestMarshalKey_Prefix(t *testing.T) {
	zoom := format.NewZoom(15, 15, 10, 20)
	prefix := MustParseBits("110010011101010000")

	data, err := prefix.MarshalKey(zoom)
	require.NoError(t, err)

	got, gotZoom, err := UnmarshalKey(data)
	require.NoError(t, err)
	require.True(t, prefix.Equal(got))
	require.Equal(t, zoom, gotZoom)

	empty, err := ID{}.MarshalKey(zoom)
	require.NoError(t, err)
	require.Len(t, empty, section.KeyHeaderSize)
	got, _, err = UnmarshalKey(empty)
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func TestMarshalKey_Errors(t *testing.T) {
	id := MustParseBits("1010101010")

	_, err := id.MarshalKey(format.NewZoom(2, 2, 2, 2))
	require.ErrorIs(t, err, errs.ErrBitLengthMismatch)

	_, err = id.MarshalKey(format.NewZoom(80, 0, 0, 0))
	require.ErrorIs(t, err, errs.ErrInvalidZoom)

	data, err := id.MarshalKey(format.NewZoom(3, 3, 2, 2))
	require.NoError(t, err)

	_, _, err = UnmarshalKey(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, _, err = UnmarshalKey(append(data, 0))
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, _, err = UnmarshalKey(data[:4])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}
