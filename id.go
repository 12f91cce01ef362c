package bstid

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/holiman/uint256"

	"github.com/arloliu/bstid/errs"
	"github.com/arloliu/bstid/format"
)

// ID is an immutable BST-ID: an unsigned integer of up to 256 bits paired
// with its bit length.
//
// Leading zero bits are significant, so the length travels with the value.
// Bit 0 is the most significant of the Len() bits. The zero-length ID is
// the whole space and contains every other ID.
//
// ID is a value type and safe to copy and share between goroutines.
type ID struct {
	v uint256.Int
	n int
}

// NewID creates an ID from the low n bits of value.
//
// Returns ErrInvalidPrefixSize if n is outside [0, 256] and ErrInvalidPayload
// if value has bits set at or above position n.
func NewID(value *uint256.Int, n int) (ID, error) {
	if n < 0 || n > format.MaxBits {
		return ID{}, fmt.Errorf("%w: %d", errs.ErrInvalidPrefixSize, n)
	}
	if value.BitLen() > n {
		return ID{}, fmt.Errorf("%w: value needs %d bits, length is %d", errs.ErrInvalidPayload, value.BitLen(), n)
	}

	return ID{v: *value, n: n}, nil
}

// FromUint64 creates an ID of length n (at most 64) from value.
func FromUint64(value uint64, n int) (ID, error) {
	if n > 64 {
		return ID{}, fmt.Errorf("%w: %d exceeds 64", errs.ErrInvalidPrefixSize, n)
	}

	return NewID(uint256.NewInt(value), n)
}

// FromKey creates an ID of length n from its left-aligned key bytes (see ID.Key).
// Padding bits after position n are ignored.
func FromKey(key []byte, n int) (ID, error) {
	if n < 0 || n > format.MaxBits {
		return ID{}, fmt.Errorf("%w: %d", errs.ErrInvalidPrefixSize, n)
	}
	if len(key) != keySize(n) {
		return ID{}, fmt.Errorf("%w: key has %d bytes, %d bits need %d", errs.ErrInvalidPayload, len(key), n, keySize(n))
	}

	return fromKey(key, n), nil
}

// ParseBits parses a string of '0' and '1' characters, most significant first.
// An optional "0b" prefix and '_' separators are accepted.
func ParseBits(s string) (ID, error) {
	s = strings.TrimPrefix(s, "0b")
	s = strings.ReplaceAll(s, "_", "")
	if len(s) > format.MaxBits {
		return ID{}, fmt.Errorf("%w: %d bits", errs.ErrInvalidPrefixSize, len(s))
	}

	var id ID
	for i := range len(s) {
		switch s[i] {
		case '0':
		case '1':
			p := len(s) - 1 - i
			id.v[p/64] |= 1 << (p % 64)
		default:
			return ID{}, fmt.Errorf("%w: unexpected character %q in bit string", errs.ErrInvalidPayload, s[i])
		}
	}
	id.n = len(s)

	return id, nil
}

// MustParseBits is like ParseBits but panics on error.
func MustParseBits(s string) ID {
	id, err := ParseBits(s)
	if err != nil {
		panic(err)
	}

	return id
}

func fromKey(key []byte, n int) ID {
	var id ID
	id.v.SetBytes(key)
	id.v.Rsh(&id.v, uint(len(key)*8-n)) //nolint: gosec
	id.n = n

	return id
}

func keySize(n int) int {
	return (n + 7) / 8
}

// Len returns the bit length.
func (id ID) Len() int {
	return id.n
}

// Value returns a copy of the integer value.
func (id ID) Value() *uint256.Int {
	v := id.v
	return &v
}

// Uint64 returns the value when it fits in 64 bits.
func (id ID) Uint64() (uint64, bool) {
	return id.v.Uint64(), id.v.IsUint64()
}

// Bit returns the bit at position i, counting from the most significant bit.
// It panics if i is out of range.
func (id ID) Bit(i int) uint {
	if i < 0 || i >= id.n {
		panic(fmt.Sprintf("bstid: bit index %d out of range [0, %d)", i, id.n))
	}
	p := id.n - 1 - i

	return uint(id.v[p/64]>>(p%64)) & 1
}

// Key returns the bits left-aligned into ceil(Len/8) bytes with zero padding.
//
// Keys of IDs with equal length sort byte-wise in numeric order, and the
// key of an ID is a bit prefix of the key of every ID it contains, so keys
// can be used directly as ordered storage keys and range-scan prefixes.
func (id ID) Key() []byte {
	nb := keySize(id.n)
	if nb == 0 {
		return []byte{}
	}

	var shifted uint256.Int
	shifted.Lsh(&id.v, uint(nb*8-id.n)) //nolint: gosec
	b32 := shifted.Bytes32()

	out := make([]byte, nb)
	copy(out, b32[32-nb:])

	return out
}

// String returns the bits as '0'/'1' characters, most significant first.
func (id ID) String() string {
	var sb strings.Builder
	sb.Grow(id.n)
	for i := range id.n {
		sb.WriteByte('0' + byte(id.Bit(i)))
	}

	return sb.String()
}

// Hex returns the value in 0x-prefixed hexadecimal followed by "/length".
func (id ID) Hex() string {
	return fmt.Sprintf("%s/%d", id.v.Hex(), id.n)
}

// Equal reports whether both IDs have the same length and bits.
func (id ID) Equal(other ID) bool {
	return id.n == other.n && id.v.Eq(&other.v)
}

// Compare orders IDs lexicographically by bits: a prefix sorts before the
// IDs it contains. It returns -1, 0 or +1.
func (id ID) Compare(other ID) int {
	if c := bytes.Compare(id.Key(), other.Key()); c != 0 {
		return c
	}

	switch {
	case id.n < other.n:
		return -1
	case id.n > other.n:
		return 1
	default:
		return 0
	}
}

// Truncate returns the ID made of the first n bits. Values of n at or above
// Len return id unchanged; negative n yields the zero-length ID.
func (id ID) Truncate(n int) ID {
	if n >= id.n {
		return id
	}
	n = max(n, 0)

	var out ID
	out.v.Rsh(&id.v, uint(id.n-n)) //nolint: gosec
	out.n = n

	return out
}

// Parent returns the ID one bit shorter. The zero-length ID is its own parent.
func (id ID) Parent() ID {
	return id.Truncate(id.n - 1)
}

// Contains reports whether id is a prefix of other, i.e. other's region is
// inside id's region. Every ID contains itself.
func (id ID) Contains(other ID) bool {
	return id.n <= other.n && other.Truncate(id.n).Equal(id)
}

// Range returns the smallest and largest IDs of length n inside id's region.
// Every n-bit ID contained by id lies in [lo, hi]. When n <= Len, both
// bounds are id truncated to n bits.
func (id ID) Range(n int) (lo, hi ID, err error) {
	if n < 0 || n > format.MaxBits {
		return ID{}, ID{}, fmt.Errorf("%w: %d", errs.ErrInvalidPrefixSize, n)
	}
	if n <= id.n {
		t := id.Truncate(n)
		return t, t, nil
	}

	lo.v.Lsh(&id.v, uint(n-id.n)) //nolint: gosec
	lo.n = n

	mask := lowMask(n - id.n)
	hi.v.Or(&lo.v, &mask)
	hi.n = n

	return lo, hi, nil
}

// lowMask returns an integer with the n least significant bits set.
func lowMask(n int) uint256.Int {
	var m uint256.Int
	for i := range m {
		switch {
		case n >= 64*(i+1):
			m[i] = math.MaxUint64
		case n > 64*i:
			m[i] = (uint64(1) << (n - 64*i)) - 1
		}
	}

	return m
}
