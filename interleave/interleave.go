// Package interleave combines per-dimension bit codes into one round-robin
// bit stream and splits such a stream back.
//
// Dimensions are visited in fixed X, Y, F, T order. In each round every
// dimension that still has bits left contributes its next most significant
// bit. Dimensions with a larger zoom keep contributing alone once shorter
// ones are exhausted, so only the overlapping prefix of the stream is made
// of uniform four-bit groups:
//
//	zoom x=3,y=1,f=0,t=2:  x0 y0 t0 | x1 t1 | x2
//
// Splitting a stream requires the zoom tuple that produced it; the bit
// pattern alone does not say how bits were allocated.
package interleave

import (
	"github.com/arloliu/bstid/format"
	"github.com/arloliu/bstid/internal/bitstream"
)

// Interleave packs codes into a left-aligned MSB-first byte stream of zoom.Total() bits.
//
// codes[d] holds zoom[d] significant bits; higher bits are ignored.
func Interleave(codes [format.NumDimensions]uint64, zoom format.Zoom) []byte {
	w := bitstream.NewWriter()
	defer w.Release()

	shared, lead := tail(zoom)
	for r := range shared {
		for d, bits := range zoom {
			if r < bits {
				w.WriteBit(codes[d] >> (bits - 1 - r))
			}
		}
	}
	if lead >= 0 {
		w.WriteBits(codes[lead], zoom[lead]-shared)
	}

	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())

	return out
}

// Deinterleave replays the round-robin order over the first n bits of data.
//
// n may be smaller than zoom.Total(), in which case the returned codes hold
// only the leading bits of each dimension and got reports how many bits each
// dimension received (see ZoomAt). n is capped to zoom.Total() and to the
// bits available in data.
func Deinterleave(data []byte, n int, zoom format.Zoom) (codes [format.NumDimensions]uint64, got format.Zoom) {
	n = min(n, zoom.Total(), len(data)*8)
	r := bitstream.NewReader(data)

	shared, lead := tail(zoom)
	read := 0
	for round := 0; round < shared && read < n; round++ {
		for d, bits := range zoom {
			if round >= bits || read >= n {
				continue
			}
			bit, _ := r.ReadBit()
			codes[d] = codes[d]<<1 | bit
			got[d]++
			read++
		}
	}

	if lead >= 0 && read < n {
		k := min(zoom[lead]-shared, n-read)
		v, _ := r.ReadBits(k)
		codes[lead] = codes[lead]<<k | v
		got[lead] += k
	}

	return codes, got
}

// tail splits the schedule of zoom into the rounds where two or more
// dimensions contribute and the run left to the single longest dimension.
// lead is -1 when the longest zoom level is not unique.
func tail(zoom format.Zoom) (shared int, lead int) {
	lead = -1
	top, second := 0, 0
	for d, bits := range zoom {
		switch {
		case bits > top:
			second, top, lead = top, bits, d
		case bits == top:
			second, lead = bits, -1
		case bits > second:
			second = bits
		}
	}
	if lead < 0 {
		return top, -1
	}

	return second, lead
}

// Schedule returns the dimension that owns each bit position of a stream
// produced with zoom, in stream order.
func Schedule(zoom format.Zoom) []format.Dimension {
	order := make([]format.Dimension, 0, zoom.Total())
	for r := range zoom.Max() {
		for d, bits := range zoom {
			if r < bits {
				order = append(order, format.Dimension(d))
			}
		}
	}

	return order
}

// ZoomAt returns how many bits of each dimension lie within the first n
// bits of a stream produced with zoom. It is the effective precision of an
// n-bit prefix.
func ZoomAt(zoom format.Zoom, n int) format.Zoom {
	var got format.Zoom
	if n <= 0 {
		return got
	}

	for r := range zoom.Max() {
		for d, bits := range zoom {
			if r < bits {
				got[d]++
				n--
				if n == 0 {
					return got
				}
			}
		}
	}

	return got
}

// Round is one round-robin pass: the dimensions that contributed a bit in that round, in order.
type Round []format.Dimension

// Rounds groups the schedule of the first n bits by round.
func Rounds(zoom format.Zoom, n int) []Round {
	n = min(n, zoom.Total())
	rounds := make([]Round, 0, zoom.Max())
	for r := 0; n > 0; r++ {
		var round Round
		for d, bits := range zoom {
			if r < bits && n > 0 {
				round = append(round, format.Dimension(d))
				n--
			}
		}
		rounds = append(rounds, round)
	}

	return rounds
}
