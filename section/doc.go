// Package section defines the fixed-size headers of the bstid binary formats.
//
// # Self-describing key
//
// A plain BST-ID needs its zoom tuple out of band to be decoded. A
// self-describing key carries it in an 8-byte header:
//
//	┌──────────────────────────────────────────────┐
//	│ Options (2 bytes, little-endian)             │
//	│  - bits 4-15: magic 0xB51                    │
//	│ Zoom X, Y, F, T (1 byte each)                │
//	│ BitLen (2 bytes, big-endian)                 │
//	├──────────────────────────────────────────────┤
//	│ Key (ceil(BitLen/8) bytes, left-aligned)     │
//	└──────────────────────────────────────────────┘
//
// The header is a constant prefix for a given zoom tuple and bit length,
// so self-describing keys of one zoom still sort in ID order.
//
// # ID set blob
//
//	┌──────────────────────────────────────────────┐
//	│ Header (16 bytes)                            │
//	│  - Options (2 bytes, little-endian)          │
//	│      bit 0: 0=little, 1=big endian           │
//	│      bits 4-15: magic 0xB52                  │
//	│  - CompressionType (1 byte)                  │
//	│  - Reserved (1 byte)                         │
//	│  - Count (4 bytes)                           │
//	│  - Checksum (8 bytes, xxHash64 of payload)   │
//	├──────────────────────────────────────────────┤
//	│ Payload (compressed)                         │
//	│  - Count × [BitLen uint16][Key bytes]        │
//	└──────────────────────────────────────────────┘
//
// Multi-byte fields after Options use the byte order selected by bit 0.
package section
