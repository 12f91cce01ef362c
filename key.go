package bstid

import (
	"fmt"

	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
	"github.com/arloliu/bstid/section"
)

// MarshalKey returns the self-describing form of id: a KeyHeader carrying
// zoom and the bit length, followed by id.Key().
//
// zoom is the tuple id (or the ID it is a prefix of) was encoded with.
// Returns ErrBitLengthMismatch if id is longer than zoom.Total().
func (id ID) MarshalKey(zoom format.Zoom) ([]byte, error) {
	if !zoom.Valid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidZoom, zoom)
	}
	if id.n > zoom.Total() {
		return nil, fmt.Errorf("%w: id has %d bits, zoom %s allows at most %d", errs.ErrBitLengthMismatch, id.n, zoom, zoom.Total())
	}

	header := section.NewKeyHeader(zoom, id.n)

	return append(header.Bytes(), id.Key()...), nil
}

// UnmarshalKey parses a self-describing key produced by MarshalKey.
func UnmarshalKey(data []byte) (ID, format.Zoom, error) {
	header, err := section.ParseKeyHeader(data)
	if err != nil {
		return ID{}, format.Zoom{}, err
	}

	payload := data[section.KeyHeaderSize:]
	if len(payload) != header.PayloadSize() {
		return ID{}, format.Zoom{}, fmt.Errorf("%w: key payload has %d bytes, expected %d", errs.ErrInvalidPayload, len(payload), header.PayloadSize())
	}

	return fromKey(payload, int(header.BitLen)), header.Zoom, nil
}
