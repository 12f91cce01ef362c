package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
)

// KeyHeader is the fixed 8-byte prefix of a self-describing key.
type KeyHeader struct {
	// Options packs the magic number in bits 4-15. Bits 0-3 must be zero.
	Options uint16 // byte offset 0-1
	// Zoom holds the zoom tuple the ID was encoded with.
	Zoom format.Zoom // byte offset 2-5
	// BitLen is the number of ID bits that follow, at most Zoom.Total().
	BitLen uint16 // byte offset 6-7
}

// NewKeyHeader creates a header for an ID of bitLen bits encoded with zoom.
func NewKeyHeader(zoom format.Zoom, bitLen int) KeyHeader {
	return KeyHeader{
		Options: MagicKeyV1,
		Zoom:    zoom,
		BitLen:  uint16(bitLen), //nolint: gosec
	}
}

// PayloadSize returns the number of key bytes following the header.
func (h KeyHeader) PayloadSize() int {
	return (int(h.BitLen) + 7) / 8
}

// Validate checks magic number, reserved bits and zoom consistency.
func (h KeyHeader) Validate() error {
	if h.Options&MagicNumberMask != MagicKeyV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, h.Options&MagicNumberMask)
	}
	if h.Options&^MagicNumberMask != 0 {
		return fmt.Errorf("%w: reserved bits set 0x%04x", errs.ErrInvalidHeaderFlags, h.Options)
	}
	if !h.Zoom.Valid() {
		return fmt.Errorf("%w: %w: %s", errs.ErrInvalidHeaderFlags, errs.ErrInvalidZoom, h.Zoom)
	}
	if int(h.BitLen) > h.Zoom.Total() {
		return fmt.Errorf("%w: %d bits exceed zoom total %d", errs.ErrBitLengthMismatch, h.BitLen, h.Zoom.Total())
	}

	return nil
}

// Bytes serializes the header.
func (h KeyHeader) Bytes() []byte {
	b := make([]byte, KeyHeaderSize)
	binary.LittleEndian.PutUint16(b[0:2], h.Options)
	for d, bits := range h.Zoom {
		b[2+d] = uint8(bits) //nolint: gosec
	}
	binary.BigEndian.PutUint16(b[6:8], h.BitLen)

	return b
}

// Parse parses the header from exactly KeyHeaderSize bytes and validates it.
func (h *KeyHeader) Parse(data []byte) error {
	if len(data) != KeyHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Options = binary.LittleEndian.Uint16(data[0:2])
	for d := range h.Zoom {
		h.Zoom[d] = int(data[2+d])
	}
	h.BitLen = binary.BigEndian.Uint16(data[6:8])

	return h.Validate()
}

// ParseKeyHeader parses a KeyHeader from the start of data.
func ParseKeyHeader(data []byte) (KeyHeader, error) {
	if len(data) < KeyHeaderSize {
		return KeyHeader{}, errs.ErrInvalidHeaderSize
	}

	h := KeyHeader{}
	if err := h.Parse(data[:KeyHeaderSize]); err != nil {
		return KeyHeader{}, err
	}

	return h, nil
}
