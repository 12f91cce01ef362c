package section

import (
	"fmt"

	"github.com/arloliu/bstid/endian"
	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
)

// SetFlag is the packed options and compression field of a set header.
type SetFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved and must be 0.
	// Bits 4-15 hold the magic number 0xB52.
	Options uint16
	// CompressionType is the compression applied to the payload.
	CompressionType uint8
}

var validSetCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewSetFlag creates a little-endian, uncompressed set flag.
func NewSetFlag() SetFlag {
	return SetFlag{
		Options:         MagicSetV1,
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the header and payload length fields are little-endian.
func (f SetFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header and payload length fields are big-endian.
func (f SetFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *SetFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *SetFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// Compression returns the payload compression type.
func (f SetFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *SetFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// GetMagicNumber returns the magic number from the Options field.
func (f SetFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks magic number, reserved bits and compression type.
func (f SetFlag) Validate() error {
	if f.GetMagicNumber() != MagicSetV1 {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validSetCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: %w 0x%x", errs.ErrInvalidHeaderFlags, errs.ErrUnsupportedCompression, f.CompressionType)
	}

	return nil
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f SetFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
