// Package hash provides the xxHash64 fingerprints used for ID keys and set
// payload checksums.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Key hashes an ID given as its left-aligned key bytes and bit length.
// The length is mixed in so "1" and "10", which share the key 0x80, differ.
func Key(key []byte, bitLen int) uint64 {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(bitLen)) //nolint: gosec

	d := xxhash.New()
	_, _ = d.Write(lenBuf[:])
	_, _ = d.Write(key)

	return d.Sum64()
}
