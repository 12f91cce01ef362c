// Package bitstream provides MSB-first bit-level writing and reading over byte slices.
//
// Bits are packed most significant first and the final partial byte is
// zero padded, so the produced bytes are the left-aligned form of the bit
// sequence: byte-wise comparison of two streams of equal bit length
// matches comparison of the sequences as unsigned integers.
package bitstream

import (
	"encoding/binary"

	"github.com/arloliu/bstid/internal/pool"
)

// Writer accumulates bits in a 64-bit buffer and flushes them to a pooled byte buffer.
type Writer struct {
	bitBuf   uint64 // Bit buffer for accumulating bits before writing to byte buffer
	bitCount int    // Number of valid bits in bitBuf
	total    int    // Number of bits written

	buf *pool.ByteBuffer
}

// NewWriter creates a writer backed by a pooled key buffer.
// Call Release when the bytes are no longer needed.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetKeyBuffer()}
}

// WriteBit appends a single bit (0 or 1).
func (w *Writer) WriteBit(bit uint64) {
	w.bitBuf = (w.bitBuf << 1) | (bit & 1)
	w.bitCount++
	w.total++

	if w.bitCount == 64 {
		w.flushBits()
	}
}

// WriteBits appends the numBits least significant bits of value, most significant first.
//
// Parameters:
//   - value: the bits to write (only the least significant 'numBits' are used)
//   - numBits: number of bits to write (0-64)
func (w *Writer) WriteBits(value uint64, numBits int) {
	if numBits <= 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}
	w.total += numBits

	available := 64 - w.bitCount
	if numBits < available {
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits

		return
	}

	// Split across buffer boundary
	highBits := numBits - available
	if available == 64 {
		w.bitBuf = value
	} else {
		w.bitBuf = (w.bitBuf << available) | (value >> highBits)
	}
	w.bitCount = 64
	w.flushBits()

	if highBits > 0 {
		w.bitBuf = value & ((1 << highBits) - 1)
		w.bitCount = highBits
	}
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	return w.total
}

// Bytes pads the pending bits to a byte boundary and returns the packed stream.
//
// The returned slice references the pooled buffer and is valid until Release.
// No bits may be written after calling Bytes.
func (w *Writer) Bytes() []byte {
	if w.bitCount > 0 {
		w.flushBits()
	}

	return w.buf.Bytes()
}

// Release returns the underlying buffer to the pool.
func (w *Writer) Release() {
	pool.PutKeyBuffer(w.buf)
	w.buf = nil
}

// flushBits writes the current bit buffer to the byte buffer, big-endian and left-aligned.
func (w *Writer) flushBits() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8
	alignedBits := w.bitBuf << (64 - w.bitCount)

	startLen := w.buf.Len()
	w.buf.ExtendOrGrow(numBytes)
	bs := w.buf.Slice(startLen, startLen+numBytes)

	if numBytes == 8 {
		binary.BigEndian.PutUint64(bs, alignedBits)
	} else {
		for i := range numBytes {
			bs[i] = byte(alignedBits >> (56 - i*8))
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// Reader reads bits most significant first from a byte slice.
type Reader struct {
	data     []byte // Source data
	bytePos  int    // Current byte position
	bitBuf   uint64 // Buffer holding current bits, left-aligned
	bitCount int    // Number of valid bits in buffer
}

// NewReader creates a reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads a single bit. It returns false when the stream is exhausted.
func (r *Reader) ReadBit() (uint64, bool) {
	if r.bitCount == 0 && !r.fillBuffer() {
		return 0, false
	}

	bit := r.bitBuf >> 63
	r.bitBuf <<= 1
	r.bitCount--

	return bit, true
}

// ReadBits reads numBits (0-64) bits and returns them right-aligned.
// It returns false if fewer than numBits bits remain.
func (r *Reader) ReadBits(numBits int) (uint64, bool) {
	if numBits <= 0 {
		return 0, true
	}

	var result uint64
	for numBits > 0 {
		if r.bitCount == 0 && !r.fillBuffer() {
			return 0, false
		}

		n := min(numBits, r.bitCount)
		chunk := r.bitBuf >> (64 - n)
		if n == 64 {
			result = chunk
		} else {
			result = (result << n) | chunk
		}

		if n == 64 {
			r.bitBuf = 0
		} else {
			r.bitBuf <<= n
		}
		r.bitCount -= n
		numBits -= n
	}

	return result, true
}

// fillBuffer refills the bit buffer with up to 8 bytes.
func (r *Reader) fillBuffer() bool {
	if r.bytePos >= len(r.data) {
		return false
	}

	bytesToRead := min(8, len(r.data)-r.bytePos)
	if bytesToRead == 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bytePos += 8
		r.bitCount = 64

		return true
	}

	r.bitBuf = 0
	for range bytesToRead {
		r.bitBuf = (r.bitBuf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	r.bitBuf <<= (8 - bytesToRead) * 8
	r.bitCount = bytesToRead * 8

	return true
}
