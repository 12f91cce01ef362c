// Package compress provides the codecs applied to ID set payloads after
// encoding.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: payload stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Sorted ID keys share long prefixes, so Zstd and S2 usually shrink a set
// payload well; LZ4 trades some of that for decode speed.
//
// All codecs are stateless values safe for concurrent use. Zstd and LZ4
// keep their encoders in a sync.Pool.
//
// # Zstd Backends
//
// The default Zstd backend is the pure Go github.com/klauspost/compress/zstd.
// Building with cgo and the gozstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both backends produce standard Zstandard frames and read each other's output.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress(payload)
//	payload, err = codec.Decompress(packed)
package compress
