// Package idset stores collections of BST-IDs in prefix order and
// serializes them into compact, checksummed blobs.
//
// Because a region's members are contiguous in prefix order, region
// queries are a binary search followed by a linear scan:
//
//	set := idset.New(id1, id2, id3)
//	for id := range set.Match(q) {
//	    // id contains q or lies inside it
//	}
//	union := set.Bounds() // common prefix of all members
//
// # Blob Format
//
//	+------------------------+----------------------------------------+
//	| SetHeader (16 bytes)   | payload (optionally compressed)        |
//	+------------------------+----------------------------------------+
//
// The payload is one entry per ID, [bit length uint16][ceil(n/8) key bytes],
// in prefix order. The bit length uses the header's byte order; key bytes
// are always left-aligned big-endian. The header stores the ID count and
// the xxHash64 of the uncompressed payload.
//
//	blob, err := set.Encode(idset.WithCompression(format.CompressionZstd))
//	decoded, err := idset.Unmarshal(blob)
package idset
