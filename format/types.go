package format

import (
	"fmt"
	"strings"
)

type (
	Dimension       uint8
	CompressionType uint8
)

const (
	DimX Dimension = 0 // DimX is the longitude dimension.
	DimY Dimension = 1 // DimY is the latitude dimension.
	DimF Dimension = 2 // DimF is the altitude / frequency dimension.
	DimT Dimension = 3 // DimT is the unix time dimension.

	NumDimensions = 4 // NumDimensions is the number of interleaved dimensions.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	// MaxZoom is the largest zoom level of a single dimension. Codes are carried as uint64.
	MaxZoom = 64
	// MaxBits is the widest BST-ID supported.
	MaxBits = 256
)

// Dimensions lists every dimension in interleave order.
var Dimensions = [NumDimensions]Dimension{DimX, DimY, DimF, DimT}

func (d Dimension) String() string {
	switch d {
	case DimX:
		return "x"
	case DimY:
		return "y"
	case DimF:
		return "f"
	case DimT:
		return "t"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four known dimensions.
func (d Dimension) Valid() bool {
	return d < NumDimensions
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Zoom holds the number of bits allocated to each dimension, indexed by Dimension.
type Zoom [NumDimensions]int

// NewZoom creates a Zoom from per-dimension bit counts in X, Y, F, T order.
func NewZoom(x, y, f, t int) Zoom {
	return Zoom{x, y, f, t}
}

// Total returns the sum of all zoom levels, the bit length of an ID encoded with z.
func (z Zoom) Total() int {
	total := 0
	for _, bits := range z {
		total += bits
	}

	return total
}

// Max returns the largest zoom level, which is the number of interleave rounds.
func (z Zoom) Max() int {
	m := 0
	for _, bits := range z {
		m = max(m, bits)
	}

	return m
}

// Valid reports whether every zoom level is within [0, MaxZoom].
func (z Zoom) Valid() bool {
	for _, bits := range z {
		if bits < 0 || bits > MaxZoom {
			return false
		}
	}

	return true
}

func (z Zoom) String() string {
	var sb strings.Builder
	for i, bits := range z {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s=%d", Dimension(i), bits)
	}

	return sb.String()
}
