package timecodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bstid/errs"
)

func TestToUnix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"utc", "2025-05-21T15:00:00Z", 1747839600},
		{"five minutes later", "2025-05-21T15:05:00Z", 1747839900},
		{"offset", "2025-05-22T00:00:00+09:00", 1747839600},
		{"fraction truncated", "2025-05-21T15:00:00.75Z", 1747839600},
		{"epoch", "1970-01-01T00:00:00Z", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUnix(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestToUnix_Invalid(t *testing.T) {
	for _, s := range []string{"", "2025-05-21", "2025-13-01T00:00:00Z", "yesterday"} {
		_, err := ToUnix(s)
		require.ErrorIs(t, err, errs.ErrInvalidTimestamp, s)
		require.ErrorIs(t, err, errs.ErrFormat)
	}
}

func TestFromUnix(t *testing.T) {
	require.Equal(t, "2025-05-21T15:00:00Z", FromUnix(1747839600))
	require.Equal(t, "1970-01-01T00:00:00Z", FromUnix(0))

	require.Equal(t, "2025-05-21T15:00:00Z", FromUnixFloat(1747839600.4))
	require.Equal(t, "2025-05-21T15:00:01Z", FromUnixFloat(1747839600.6))

	got, err := ToUnix(FromUnix(1747839900))
	require.NoError(t, err)
	require.Equal(t, int64(1747839900), got)
}

func TestParseLenient(t *testing.T) {
	for _, s := range []string{
		"2025-05-21T15:00:00Z",
		"2025-05-21 15:00:00",
		"2025/05/21 15:00:00",
		"1747839600",
	} {
		got, err := ParseLenient(s)
		require.NoError(t, err, s)
		require.Equal(t, int64(1747839600), got, s)
	}

	_, err := ParseLenient("not a date")
	require.ErrorIs(t, err, errs.ErrInvalidTimestamp)
}
