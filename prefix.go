package bstid

import "github.com/holiman/uint256"

// CommonPrefix returns the longest run of equal leading bits of a and b
// (the "union" of both regions).
//
// Both IDs are aligned on their own top bits and compared over the shorter
// length n. The result is the smallest interleaved region containing both
// cells; its length is at most n. CommonPrefix is symmetric and
// CommonPrefix(a, a) == a.
func CommonPrefix(a, b ID) ID {
	n := min(a.n, b.n)

	var ta, tb, diff uint256.Int
	ta.Rsh(&a.v, uint(a.n-n)) //nolint: gosec
	tb.Rsh(&b.v, uint(b.n-n)) //nolint: gosec
	diff.Xor(&ta, &tb)

	p := n - diff.BitLen()

	var out ID
	out.v.Rsh(&ta, uint(n-p)) //nolint: gosec
	out.n = p

	return out
}

// CommonPrefixAll folds CommonPrefix over ids. It returns the zero-length
// ID when ids is empty.
func CommonPrefixAll(ids ...ID) ID {
	if len(ids) == 0 {
		return ID{}
	}

	prefix := ids[0]
	for _, id := range ids[1:] {
		if prefix.n == 0 {
			break
		}
		prefix = CommonPrefix(prefix, id)
	}

	return prefix
}

// IsMatch reports whether one ID is a prefix of the other (the
// "intersection" test): the coarser region contains the finer one, or
// both are identical at equal length. A zero-length ID matches everything.
func IsMatch(a, b ID) bool {
	return CommonPrefix(a, b).n == min(a.n, b.n)
}
