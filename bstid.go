// Package bstid encodes points of a four-dimensional space (longitude,
// latitude, altitude or frequency, and time) into BST-IDs: variable-length
// bit strings whose prefixes describe nested regions.
//
// Each coordinate is quantized into a per-call number of bits (its zoom
// level) and the four bit sequences are interleaved round-robin, most
// significant bit first, in X, Y, F, T order. IDs sharing a longer common
// prefix lie in a smaller common region, so union and containment tests
// run on the integer encoding without decoding.
//
// # Core Features
//
//   - Per-dimension zoom levels (0-64 bits each, up to 256 bits per ID)
//   - Round trip to the cell midpoint, error at most half a cell width
//   - CommonPrefix ("union") and IsMatch ("intersection") on raw IDs
//   - Sortable left-aligned keys and range bounds for prefix scans
//   - Optional self-describing keys carrying the zoom tuple
//   - Separate for inspecting which bit came from which dimension
//
// # Basic Usage
//
//	import "github.com/arloliu/bstid"
//
//	zoom := format.NewZoom(15, 15, 10, 20)
//	t1, _ := timecodec.ToUnix("2025-05-21T15:00:00Z")
//
//	id1, _ := bstid.Encode(139.75, 35.68, 15.0, float64(t1), 15, 15, 10, 20)
//	id2, _ := bstid.Encode(139, 35, 50.0, float64(t1+300), 15, 15, 10, 20)
//
//	p, _ := bstid.Decode(id1, 15, 15, 10, 20)    // ≈ (139.75, 35.68, 15, t1)
//	union := bstid.CommonPrefix(id1, id2)          // shared region
//	match := bstid.IsMatch(id1, id2)               // false: neither contains the other
//	s, _ := bstid.Separate(union, zoom)            // bits by round and dimension
//
// # Package Structure
//
// The package-level functions use a codec with the default domains. Create
// a Codec with NewCodec to change domains, limit the ID width or reject
// out-of-domain values. Sets of IDs and their binary form live in the idset
// package; ISO-8601 conversion of the time dimension lives in timecodec.
package bstid

import (
	"github.com/arloliu/bstid/format"
)

var defaultCodec = mustCodec()

func mustCodec(opts ...CodecOption) *Codec {
	c, err := NewCodec(opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// DefaultCodec returns the codec used by the package-level functions: default
// domains, 256-bit maximum width, out-of-domain values clamped.
func DefaultCodec() *Codec {
	return defaultCodec
}

// Encode encodes (x, y, f, t) with the default codec. The bit length of the
// result is zoomX + zoomY + zoomF + zoomT.
func Encode(x, y, f, t float64, zoomX, zoomY, zoomF, zoomT int) (ID, error) {
	return defaultCodec.Encode(Point{X: x, Y: y, F: f, T: t}, format.NewZoom(zoomX, zoomY, zoomF, zoomT))
}

// Decode decodes id with the default codec. The zoom levels must be the ones
// id was encoded with.
func Decode(id ID, zoomX, zoomY, zoomF, zoomT int) (Point, error) {
	return defaultCodec.Decode(id, format.NewZoom(zoomX, zoomY, zoomF, zoomT))
}
