// Package errs defines the sentinel errors returned by bstid packages.
//
// Every specific error wraps one of three kinds so callers can branch on
// the category without listing every sentinel:
//
//	if errors.Is(err, errs.ErrRange) {
//	    // requested precision cannot be represented
//	}
package errs

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrDomain reports an input value outside its dimension's declared domain.
	ErrDomain = errors.New("domain error")
	// ErrRange reports a precision request the implementation cannot represent.
	ErrRange = errors.New("range error")
	// ErrFormat reports inconsistent or malformed encoded input.
	ErrFormat = errors.New("format error")
)

// Domain errors.
var (
	ErrValueOutOfDomain = fmt.Errorf("%w: value out of domain", ErrDomain)
	ErrInvalidDomain    = fmt.Errorf("%w: invalid domain bounds", ErrDomain)
	ErrInvalidDimension = fmt.Errorf("%w: invalid dimension", ErrDomain)
)

// Range errors.
var (
	ErrInvalidZoom       = fmt.Errorf("%w: invalid zoom level", ErrRange)
	ErrBitWidthExceeded  = fmt.Errorf("%w: total bit width exceeds maximum", ErrRange)
	ErrInvalidMaxBits    = fmt.Errorf("%w: invalid maximum bit width", ErrRange)
	ErrInvalidPrefixSize = fmt.Errorf("%w: invalid prefix length", ErrRange)
)

// Format errors.
var (
	ErrBitLengthMismatch  = fmt.Errorf("%w: bit length does not match zoom levels", ErrFormat)
	ErrInvalidTimestamp   = fmt.Errorf("%w: invalid timestamp", ErrFormat)
	ErrInvalidHeaderSize  = fmt.Errorf("%w: invalid header size", ErrFormat)
	ErrInvalidMagicNumber = fmt.Errorf("%w: invalid magic number", ErrFormat)
	ErrInvalidHeaderFlags = fmt.Errorf("%w: invalid header flags", ErrFormat)
	ErrInvalidPayload     = fmt.Errorf("%w: invalid payload", ErrFormat)
	ErrChecksumMismatch   = fmt.Errorf("%w: checksum mismatch", ErrFormat)
	ErrDuplicateID        = fmt.Errorf("%w: duplicate id", ErrFormat)

	ErrUnsupportedCompression = fmt.Errorf("%w: unsupported compression type", ErrFormat)
)
