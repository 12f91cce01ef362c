// Package endian selects the byte order of multi-byte header and length
// fields in bstid blobs.
//
// Key bytes are always big-endian and left-aligned so they sort; only the
// framing fields of an ID set blob follow the order chosen here.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint16(buf, uint16(id.Len()))
//
// All functions are safe for concurrent use; engines are stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary, both satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}
