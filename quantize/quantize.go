// Package quantize maps real values of a bounded dimension to fixed-width
// integer cell codes and back.
//
// A dimension with domain [Min, Max) quantized to n bits is split into 2^n
// equal cells. The code of a value is the index of its cell, which is the
// same bit sequence a binary bisection of the domain would emit: at every
// step take the upper half (bit 1) when the value is at or above the
// midpoint, the lower half (bit 0) otherwise.
//
// Values outside the domain are clamped into the first or last cell, so
// quantization is total. Callers that need to reject such values check
// Domain.Contains first.
package quantize

import (
	"fmt"
	"math"

	"github.com/arloliu/bstid/errs"
)

// Domain is the half-open value range [Min, Max) of one dimension.
type Domain struct {
	Min float64
	Max float64
}

// NewDomain creates a validated domain.
func NewDomain(lo, hi float64) (Domain, error) {
	d := Domain{Min: lo, Max: hi}
	if err := d.Validate(); err != nil {
		return Domain{}, err
	}

	return d, nil
}

// Validate returns ErrInvalidDomain when the bounds or the width are not
// finite, or the range is empty.
func (d Domain) Validate() error {
	if math.IsNaN(d.Min) || math.IsNaN(d.Max) || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) {
		return fmt.Errorf("%w: non-finite bounds [%v, %v)", errs.ErrInvalidDomain, d.Min, d.Max)
	}
	if d.Max <= d.Min {
		return fmt.Errorf("%w: empty range [%v, %v)", errs.ErrInvalidDomain, d.Min, d.Max)
	}
	if math.IsInf(d.Width(), 0) {
		return fmt.Errorf("%w: width of [%v, %v) overflows", errs.ErrInvalidDomain, d.Min, d.Max)
	}

	return nil
}

// Contains reports whether v lies in [Min, Max).
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v < d.Max
}

// Width returns Max - Min.
func (d Domain) Width() float64 {
	return d.Max - d.Min
}

// Mid returns the domain midpoint.
func (d Domain) Mid() float64 {
	return d.Min + d.Width()/2
}

func (d Domain) String() string {
	return fmt.Sprintf("[%v, %v)", d.Min, d.Max)
}

// MaxCode returns the largest code representable with bits, 2^bits - 1.
func MaxCode(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	if bits <= 0 {
		return 0
	}

	return (uint64(1) << bits) - 1
}

// Quantize returns the cell code of value in d at the given precision.
//
// The result equals floor((value-Min)/(Max-Min) * 2^bits) clamped to
// [0, 2^bits-1]. A NaN value maps to 0. bits is expected in [0, 64].
func Quantize(value float64, d Domain, bits int) uint64 {
	if bits <= 0 {
		return 0
	}
	bits = min(bits, 64)

	if !(value > d.Min) { // also catches NaN
		return 0
	}
	maxCode := MaxCode(bits)
	if value >= d.Max {
		return maxCode
	}

	scale := math.Ldexp(1, bits)
	cell := math.Floor((value - d.Min) / d.Width() * scale)
	if cell >= scale {
		return maxCode
	}

	return uint64(cell)
}

// Dequantize returns the midpoint of the cell identified by code.
//
// With bits == 0 the whole domain is one cell and the domain midpoint is returned.
func Dequantize(code uint64, d Domain, bits int) float64 {
	bits = max(min(bits, 64), 0)
	scale := math.Ldexp(1, bits)

	return d.Min + (float64(code)+0.5)*d.Width()/scale
}

// Cell returns the bounds [lo, hi) of the cell identified by code.
func Cell(code uint64, d Domain, bits int) (lo, hi float64) {
	bits = max(min(bits, 64), 0)
	w := CellWidth(d, bits)
	lo = d.Min + float64(code)*w
	hi = lo + w

	return lo, hi
}

// CellWidth returns the width of one cell, (Max-Min) / 2^bits.
func CellWidth(d Domain, bits int) float64 {
	return d.Width() / math.Ldexp(1, max(bits, 0))
}
