package bstid

import (
	"fmt"
	"strings"

	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
	"github.com/arloliu/bstid/interleave"
)

// Group is one bit of an ID attributed to the dimension that produced it.
type Group struct {
	Dim format.Dimension
	Bit uint8
}

// Structure is an ID broken down by interleave round and by dimension.
type Structure struct {
	Len    int         // bits inspected
	Zoom   format.Zoom // zoom levels the ID was encoded with
	Rounds [][]Group   // bits per round, in stream order

	bits [format.NumDimensions][]byte
}

// Separate attributes every bit of id to its dimension and round by
// replaying the interleave schedule of zoom.
//
// id may be a prefix of an ID encoded with zoom; only its own bits are
// listed. Returns ErrBitLengthMismatch if id is longer than zoom.Total().
func Separate(id ID, zoom format.Zoom) (Structure, error) {
	if !zoom.Valid() {
		return Structure{}, fmt.Errorf("%w: %s", errs.ErrInvalidZoom, zoom)
	}
	if id.n > zoom.Total() {
		return Structure{}, fmt.Errorf("%w: id has %d bits, zoom %s allows at most %d", errs.ErrBitLengthMismatch, id.n, zoom, zoom.Total())
	}

	s := Structure{Len: id.n, Zoom: zoom}
	pos := 0
	for _, round := range interleave.Rounds(zoom, id.n) {
		groups := make([]Group, 0, len(round))
		for _, d := range round {
			bit := uint8(id.Bit(pos)) //nolint: gosec
			groups = append(groups, Group{Dim: d, Bit: bit})
			s.bits[d] = append(s.bits[d], '0'+bit)
			pos++
		}
		s.Rounds = append(s.Rounds, groups)
	}

	return s, nil
}

// DimensionBits returns the bits contributed by dimension d, most significant first.
func (s Structure) DimensionBits(d format.Dimension) string {
	if !d.Valid() {
		return ""
	}

	return string(s.bits[d])
}

// RoundBits returns the bits of round r in dimension order.
func (s Structure) RoundBits(r int) string {
	var sb strings.Builder
	for _, g := range s.Rounds[r] {
		sb.WriteByte('0' + g.Bit)
	}

	return sb.String()
}

// String renders the rounds separated by spaces followed by the
// per-dimension bit strings, for example
//
//	[1010 1001 0] x=110 y=00 f=10 t=01
func (s Structure) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := range s.Rounds {
		if r > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.RoundBits(r))
	}
	sb.WriteByte(']')

	for _, d := range format.Dimensions {
		fmt.Fprintf(&sb, " %s=%s", d, s.DimensionBits(d))
	}

	return sb.String()
}
