package bstid

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
	"github.com/arloliu/bstid/interleave"
	"github.com/arloliu/bstid/internal/options"
	"github.com/arloliu/bstid/quantize"
)

// Default dimension domains.
var (
	DefaultLongitude = quantize.Domain{Min: -180, Max: 180}
	DefaultLatitude  = quantize.Domain{Min: -90, Max: 90}
	DefaultAltitude  = quantize.Domain{Min: 0, Max: 1000}
	DefaultTime      = quantize.Domain{Min: 0, Max: 1 << 32} // unix seconds, 1970 to 2106
)

// Point is a location in the four-dimensional space.
type Point struct {
	X float64 // longitude
	Y float64 // latitude
	F float64 // altitude or frequency
	T float64 // unix time in seconds
}

// Value returns the coordinate of dimension d.
func (p Point) Value(d format.Dimension) float64 {
	switch d {
	case format.DimX:
		return p.X
	case format.DimY:
		return p.Y
	case format.DimF:
		return p.F
	default:
		return p.T
	}
}

func (p *Point) set(d format.Dimension, v float64) {
	switch d {
	case format.DimX:
		p.X = v
	case format.DimY:
		p.Y = v
	case format.DimF:
		p.F = v
	default:
		p.T = v
	}
}

// Region is the box an ID denotes: per dimension the cell [Min, Max) at the
// effective zoom.
type Region struct {
	Min  Point
	Max  Point
	Zoom format.Zoom // bits each dimension contributed
}

// Center returns the midpoint of the region.
func (r Region) Center() Point {
	var c Point
	for _, d := range format.Dimensions {
		c.set(d, r.Min.Value(d)+(r.Max.Value(d)-r.Min.Value(d))/2)
	}

	return c
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Point) bool {
	for _, d := range format.Dimensions {
		v := p.Value(d)
		if v < r.Min.Value(d) || v >= r.Max.Value(d) {
			return false
		}
	}

	return true
}

// Codec encodes points into BST-IDs and decodes them back.
//
// A Codec holds the read-only configuration shared by encode and decode:
// the domain of each dimension, the maximum ID width and the policy for
// out-of-domain values. It is immutable after NewCodec and safe for
// concurrent use.
type Codec struct {
	domains [format.NumDimensions]quantize.Domain
	maxBits int
	strict  bool
	logger  *slog.Logger
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*Codec]

// NewCodec creates a codec with the default domains, a 256-bit maximum
// width and clamping of out-of-domain values, adjusted by opts.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := &Codec{
		domains: [format.NumDimensions]quantize.Domain{DefaultLongitude, DefaultLatitude, DefaultAltitude, DefaultTime},
		maxBits: format.MaxBits,
		logger:  slog.New(slog.DiscardHandler),
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Domain returns the domain of dimension d.
func (c *Codec) Domain(d format.Dimension) quantize.Domain {
	return c.domains[d]
}

// MaxBits returns the widest ID the codec produces.
func (c *Codec) MaxBits() int {
	return c.maxBits
}

// Encode quantizes p at the given zoom levels and interleaves the codes
// into an ID of zoom.Total() bits.
//
// Errors are reported before any ID is produced:
//   - ErrInvalidZoom if a zoom level is outside [0, 64]
//   - ErrBitWidthExceeded if zoom.Total() exceeds MaxBits
//   - ErrValueOutOfDomain for NaN coordinates, or for any out-of-domain
//     coordinate when the codec is strict
//
// Out-of-domain coordinates of a non-strict codec are clamped into the
// nearest boundary cell, which silently limits round-trip precision.
func (c *Codec) Encode(p Point, zoom format.Zoom) (ID, error) {
	if err := c.checkZoom(zoom); err != nil {
		return ID{}, err
	}

	var codes [format.NumDimensions]uint64
	for _, d := range format.Dimensions {
		v := p.Value(d)
		dom := c.domains[d]
		if !dom.Contains(v) {
			if c.strict || math.IsNaN(v) {
				return ID{}, fmt.Errorf("%w: %s=%v outside %s", errs.ErrValueOutOfDomain, d, v, dom)
			}
			c.logger.Debug("clamping value to domain", "dimension", d.String(), "value", v, "domain", dom.String())
		}
		codes[d] = quantize.Quantize(v, dom, zoom[d])
	}

	return fromKey(interleave.Interleave(codes, zoom), zoom.Total()), nil
}

// Decode recovers the cell midpoint of every dimension of an ID produced
// with zoom. Each coordinate is within half a cell width of the encoded
// value.
//
// Returns ErrBitLengthMismatch if id.Len() differs from zoom.Total().
func (c *Codec) Decode(id ID, zoom format.Zoom) (Point, error) {
	if err := c.checkZoom(zoom); err != nil {
		return Point{}, err
	}
	if id.n != zoom.Total() {
		return Point{}, fmt.Errorf("%w: id has %d bits, zoom %s needs %d", errs.ErrBitLengthMismatch, id.n, zoom, zoom.Total())
	}

	codes, _ := interleave.Deinterleave(id.Key(), id.n, zoom)

	var p Point
	for _, d := range format.Dimensions {
		p.set(d, quantize.Dequantize(codes[d], c.domains[d], zoom[d]))
	}

	return p, nil
}

// DecodeRegion returns the region denoted by id, which must be an ID
// produced with zoom or a prefix of one (for example a CommonPrefix
// result). The region's Zoom reports the precision each dimension reached
// within id's bits.
func (c *Codec) DecodeRegion(id ID, zoom format.Zoom) (Region, error) {
	if err := c.checkZoom(zoom); err != nil {
		return Region{}, err
	}
	if id.n > zoom.Total() {
		return Region{}, fmt.Errorf("%w: id has %d bits, zoom %s allows at most %d", errs.ErrBitLengthMismatch, id.n, zoom, zoom.Total())
	}

	codes, got := interleave.Deinterleave(id.Key(), id.n, zoom)

	r := Region{Zoom: got}
	for _, d := range format.Dimensions {
		lo, hi := quantize.Cell(codes[d], c.domains[d], got[d])
		r.Min.set(d, lo)
		r.Max.set(d, hi)
	}

	return r, nil
}

func (c *Codec) checkZoom(zoom format.Zoom) error {
	if !zoom.Valid() {
		return fmt.Errorf("%w: %s, each level must be in [0, %d]", errs.ErrInvalidZoom, zoom, format.MaxZoom)
	}
	if total := zoom.Total(); total > c.maxBits {
		return fmt.Errorf("%w: %d bits requested, maximum is %d", errs.ErrBitWidthExceeded, total, c.maxBits)
	}

	return nil
}
