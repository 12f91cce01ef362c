package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimension_String(t *testing.T) {
	assert.Equal(t, "x", DimX.String())
	assert.Equal(t, "y", DimY.String())
	assert.Equal(t, "f", DimF.String())
	assert.Equal(t, "t", DimT.String())
	assert.Equal(t, "unknown", Dimension(9).String())
	assert.False(t, Dimension(4).Valid())
}

func TestZoom(t *testing.T) {
	z := NewZoom(15, 15, 10, 20)

	require.Equal(t, 60, z.Total())
	require.Equal(t, 20, z.Max())
	require.True(t, z.Valid())
	require.Equal(t, "x=15,y=15,f=10,t=20", z.String())

	require.False(t, NewZoom(-1, 0, 0, 0).Valid())
	require.False(t, NewZoom(0, MaxZoom+1, 0, 0).Valid())
	require.True(t, NewZoom(MaxZoom, 0, 0, 0).Valid())
	require.Equal(t, 0, Zoom{}.Total())
}

func TestCompressionType_String(t *testing.T) {
	assert.Equal(t, "None", CompressionNone.String())
	assert.Equal(t, "Zstd", CompressionZstd.String())
	assert.Equal(t, "S2", CompressionS2.String())
	assert.Equal(t, "LZ4", CompressionLZ4.String())
	assert.Equal(t, "Unknown", CompressionType(0).String())
}
