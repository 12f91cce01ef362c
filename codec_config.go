package bstid

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
	"github.com/arloliu/bstid/internal/options"
	"github.com/arloliu/bstid/quantize"
)

// setDomain validates and stores the domain of dimension d.
func (c *Codec) setDomain(d format.Dimension, dom quantize.Domain) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDimension, d)
	}
	if err := dom.Validate(); err != nil {
		return fmt.Errorf("dimension %s: %w", d, err)
	}
	c.domains[d] = dom

	return nil
}

// WithDomain sets the value range [lo, hi) of dimension d.
func WithDomain(d format.Dimension, lo, hi float64) CodecOption {
	return options.New(func(c *Codec) error {
		return c.setDomain(d, quantize.Domain{Min: lo, Max: hi})
	})
}

// WithLongitude sets the X range. The default is [-180, 180).
func WithLongitude(lo, hi float64) CodecOption {
	return WithDomain(format.DimX, lo, hi)
}

// WithLatitude sets the Y range. The default is [-90, 90).
func WithLatitude(lo, hi float64) CodecOption {
	return WithDomain(format.DimY, lo, hi)
}

// WithAltitude sets the F range (altitude or frequency). The default is [0, 1000).
func WithAltitude(lo, hi float64) CodecOption {
	return WithDomain(format.DimF, lo, hi)
}

// WithTimeRange sets the T range to [start, end) in unix seconds.
// The default covers 1970-01-01 up to 2^32 seconds later (year 2106).
func WithTimeRange(start, end time.Time) CodecOption {
	return WithDomain(format.DimT, float64(start.Unix()), float64(end.Unix()))
}

// WithMaxBits limits the total ID width. n must be in [1, 256].
// Encoding with a larger zoom total fails with ErrBitWidthExceeded.
func WithMaxBits(n int) CodecOption {
	return options.New(func(c *Codec) error {
		if n < 1 || n > format.MaxBits {
			return fmt.Errorf("%w: %d, must be in [1, %d]", errs.ErrInvalidMaxBits, n, format.MaxBits)
		}
		c.maxBits = n

		return nil
	})
}

// WithStrictDomain makes Encode reject out-of-domain coordinates with
// ErrValueOutOfDomain instead of clamping them.
func WithStrictDomain() CodecOption {
	return options.NoError(func(c *Codec) {
		c.strict = true
	})
}

// WithLogger sets the logger used for debug records such as clamped
// coordinates. A nil logger keeps the default, which discards output.
func WithLogger(logger *slog.Logger) CodecOption {
	return options.NoError(func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	})
}
