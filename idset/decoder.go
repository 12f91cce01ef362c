package idset

import (
	"fmt"

	"github.com/arloliu/bstid"
	"github.com/arloliu/bstid/compress"
	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
	"github.com/arloliu/bstid/internal/hash"
	"github.com/arloliu/bstid/section"
)

// Unmarshal decodes a blob produced by Set.Encode.
//
// The header is validated first, then the payload is decompressed and its
// checksum verified before any entry is parsed. Entries must be in strict
// prefix order, as Encode writes them.
//
// Returns:
//   - ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidHeaderFlags for a bad header
//     (an unknown compression type also matches ErrUnsupportedCompression)
//   - ErrChecksumMismatch if the payload does not match the header checksum
//   - ErrInvalidPayload for truncated, trailing or unordered entries
//   - ErrDuplicateID if an entry repeats
func Unmarshal(data []byte) (*Set, error) {
	header, err := section.ParseSetHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[section.SetHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	if sum := hash.Sum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016x, header has 0x%016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	engine := header.Flag.GetEndianEngine()
	count := int(header.Count)
	ids := make([]bstid.ID, 0, min(count, len(payload)/section.SetEntryFixed))

	offset := 0
	for i := range count {
		if len(payload)-offset < section.SetEntryFixed {
			return nil, fmt.Errorf("%w: entry %d truncated", errs.ErrInvalidPayload, i)
		}
		n := int(engine.Uint16(payload[offset:]))
		offset += section.SetEntryFixed

		size := (n + 7) / 8
		if n > format.MaxBits || len(payload)-offset < size {
			return nil, fmt.Errorf("%w: entry %d with %d bits truncated", errs.ErrInvalidPayload, i, n)
		}

		id, err := bstid.FromKey(payload[offset:offset+size], n)
		if err != nil {
			return nil, err
		}
		offset += size

		if len(ids) > 0 {
			switch ids[len(ids)-1].Compare(id) {
			case 0:
				return nil, fmt.Errorf("%w: entry %d", errs.ErrDuplicateID, i)
			case 1:
				return nil, fmt.Errorf("%w: entry %d out of order", errs.ErrInvalidPayload, i)
			}
		}
		ids = append(ids, id)
	}

	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayload, len(payload)-offset)
	}

	return fromSorted(ids), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces the
// contents of s.
func (s *Set) UnmarshalBinary(data []byte) error {
	decoded, err := Unmarshal(data)
	if err != nil {
		return err
	}
	s.ids = decoded.ids

	return nil
}
