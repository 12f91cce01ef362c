package section

import (
	"encoding/binary"

	"github.com/arloliu/bstid/errs"
)

// SetHeader is the fixed-size header at the start of an ID set blob.
type SetHeader struct {
	// Flag packs endianness, magic number and compression type.
	Flag SetFlag // byte offset 0-2, byte 3 reserved
	// Count is the number of IDs in the payload.
	Count uint32 // byte offset 4-7
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 8-15
}

// NewSetHeader creates a header with the default flag.
// Count and Checksum are filled in by the encoder.
func NewSetHeader() *SetHeader {
	return &SetHeader{Flag: NewSetFlag()}
}

// Bytes serializes the header.
func (h *SetHeader) Bytes() []byte {
	b := make([]byte, SetHeaderSize)
	engine := h.Flag.GetEndianEngine()

	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint64(b[8:16], h.Checksum)

	return b
}

// Parse parses the header from exactly SetHeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 16 bytes, or flag validation errors
func (h *SetHeader) Parse(data []byte) error {
	if len(data) != SetHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian, it selects the engine for the rest.
	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.CompressionType = data[2]
	if data[3] != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	engine := h.Flag.GetEndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return h.Flag.Validate()
}

// ParseSetHeader parses a SetHeader from the start of data.
func ParseSetHeader(data []byte) (SetHeader, error) {
	if len(data) < SetHeaderSize {
		return SetHeader{}, errs.ErrInvalidHeaderSize
	}

	h := SetHeader{}
	if err := h.Parse(data[:SetHeaderSize]); err != nil {
		return SetHeader{}, err
	}

	return h, nil
}
