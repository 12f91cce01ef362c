package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"value out of domain", ErrValueOutOfDomain, ErrDomain},
		{"invalid domain", ErrInvalidDomain, ErrDomain},
		{"invalid zoom", ErrInvalidZoom, ErrRange},
		{"bit width exceeded", ErrBitWidthExceeded, ErrRange},
		{"bit length mismatch", ErrBitLengthMismatch, ErrFormat},
		{"invalid timestamp", ErrInvalidTimestamp, ErrFormat},
		{"checksum mismatch", ErrChecksumMismatch, ErrFormat},
		{"duplicate id", ErrDuplicateID, ErrFormat},
		{"unsupported compression", ErrUnsupportedCompression, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.kind)

			wrapped := fmt.Errorf("%w: extra context", tt.err)
			require.ErrorIs(t, wrapped, tt.err)
			require.ErrorIs(t, wrapped, tt.kind)
		})
	}
}

func TestErrorKinds_Disjoint(t *testing.T) {
	require.False(t, errors.Is(ErrInvalidZoom, ErrFormat))
	require.False(t, errors.Is(ErrBitLengthMismatch, ErrRange))
	require.False(t, errors.Is(ErrValueOutOfDomain, ErrRange))
}
