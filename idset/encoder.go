package idset

import (
	"fmt"

	"github.com/arloliu/bstid"
	"github.com/arloliu/bstid/compress"
	"github.com/arloliu/bstid/endian"
	"github.com/arloliu/bstid/format"
	"github.com/arloliu/bstid/internal/hash"
	"github.com/arloliu/bstid/internal/options"
	"github.com/arloliu/bstid/internal/pool"
	"github.com/arloliu/bstid/section"
)

var littleEndian = endian.GetLittleEndianEngine()

// EncoderConfig holds the blob layout chosen by EncodeOptions.
type EncoderConfig struct {
	header *section.SetHeader
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{header: section.NewSetHeader()}
}

// EncodeOption configures Set.Encode.
type EncodeOption = options.Option[*EncoderConfig]

// WithCompression selects the payload compression. Default is
// format.CompressionNone. Unknown types return ErrUnsupportedCompression.
func WithCompression(ct format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncoderConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		cfg.header.Flag.SetCompression(ct)

		return nil
	})
}

// WithLittleEndian writes header and length fields little-endian. This is the default.
func WithLittleEndian() EncodeOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian writes header and length fields big-endian.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.header.Flag.WithBigEndian()
	})
}

// Encode serializes the set into a blob: a 16-byte SetHeader followed by
// the optionally compressed payload of [bit length uint16][key] entries in
// prefix order. The header checksum covers the uncompressed payload.
func (s *Set) Encode(opts ...EncodeOption) ([]byte, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header := *cfg.header
	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	buf := pool.GetSetBuffer()
	defer pool.PutSetBuffer(buf)

	buf.B = s.appendPayload(buf.B, header.Flag.GetEndianEngine())
	payload := buf.Bytes()

	header.Count = uint32(len(s.ids)) //nolint: gosec
	header.Checksum = hash.Sum(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	blob := make([]byte, section.SetHeaderSize+len(compressed))
	copy(blob, header.Bytes())
	copy(blob[section.SetHeaderSize:], compressed)

	return blob, nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the default
// layout: little-endian, uncompressed.
func (s *Set) MarshalBinary() ([]byte, error) {
	return s.Encode()
}

// Fingerprint returns the xxHash64 of the set's little-endian payload. It
// equals the checksum stored by Encode with the default byte order, so two
// sets have equal fingerprints when they hold the same IDs.
func (s *Set) Fingerprint() uint64 {
	buf := pool.GetSetBuffer()
	defer pool.PutSetBuffer(buf)

	buf.B = s.appendPayload(buf.B, littleEndian)

	return hash.Sum(buf.B)
}

func (s *Set) appendPayload(dst []byte, engine endian.EndianEngine) []byte {
	for _, id := range s.ids {
		dst = appendEntry(dst, id, id.Key(), engine)
	}

	return dst
}

func appendEntry(dst []byte, id bstid.ID, key []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint16(dst, uint16(id.Len())) //nolint: gosec
	return append(dst, key...)
}
