package idset

import (
	"iter"
	"slices"

	"github.com/arloliu/bstid"
)

// Set is a sorted, duplicate-free collection of BST-IDs.
//
// IDs are kept in prefix order (bstid.ID.Compare): an ID sorts before every
// ID it contains, so all members inside a region form one contiguous run.
//
// A Set is not safe for concurrent mutation. Concurrent reads are safe.
type Set struct {
	ids []bstid.ID
}

// New creates a set from ids, dropping duplicates.
func New(ids ...bstid.ID) *Set {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, bstid.ID.Compare)
	sorted = slices.CompactFunc(sorted, bstid.ID.Equal)

	return &Set{ids: sorted}
}

// fromSorted wraps ids that are already sorted and unique.
func fromSorted(ids []bstid.ID) *Set {
	return &Set{ids: ids}
}

// Add inserts id and reports whether it was not already present.
func (s *Set) Add(id bstid.ID) bool {
	i, found := s.search(id)
	if found {
		return false
	}
	s.ids = slices.Insert(s.ids, i, id)

	return true
}

// Remove deletes id and reports whether it was present.
func (s *Set) Remove(id bstid.ID) bool {
	i, found := s.search(id)
	if !found {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)

	return true
}

// Len returns the number of IDs.
func (s *Set) Len() int {
	return len(s.ids)
}

// At returns the i-th ID in prefix order.
func (s *Set) At(i int) bstid.ID {
	return s.ids[i]
}

// All iterates over the IDs in prefix order.
func (s *Set) All() iter.Seq[bstid.ID] {
	return slices.Values(s.ids)
}

// Contains reports whether id is a member.
func (s *Set) Contains(id bstid.ID) bool {
	_, found := s.search(id)
	return found
}

// Bounds returns the common prefix of all members: the smallest region
// containing every ID. An empty set yields the zero-length ID.
func (s *Set) Bounds() bstid.ID {
	if len(s.ids) == 0 {
		return bstid.ID{}
	}

	// in prefix order the first and last members bound the common prefix
	return bstid.CommonPrefix(s.ids[0], s.ids[len(s.ids)-1])
}

// Match iterates, in prefix order, over the members that intersect q:
// members containing q followed by q itself and the members inside q.
func (s *Set) Match(q bstid.ID) iter.Seq[bstid.ID] {
	return func(yield func(bstid.ID) bool) {
		for n := range q.Len() {
			if anc := q.Truncate(n); s.Contains(anc) {
				if !yield(anc) {
					return
				}
			}
		}

		i, _ := s.search(q)
		for ; i < len(s.ids) && q.Contains(s.ids[i]); i++ {
			if !yield(s.ids[i]) {
				return
			}
		}
	}
}

// Within returns the members inside q's region, q included, as a slice
// sharing the set's storage.
func (s *Set) Within(q bstid.ID) []bstid.ID {
	i, _ := s.search(q)
	j := i
	for j < len(s.ids) && q.Contains(s.ids[j]) {
		j++
	}

	return s.ids[i:j:j]
}

// Clusters groups the members by their first prefixLen bits. Map keys are
// the prefixes in ID.Hex form. Members shorter than prefixLen form their own
// group.
func (s *Set) Clusters(prefixLen int) map[string][]bstid.ID {
	out := make(map[string][]bstid.ID)
	for _, id := range s.ids {
		k := id.Truncate(prefixLen).Hex()
		out[k] = append(out[k], id)
	}

	return out
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return fromSorted(slices.Clone(s.ids))
}

func (s *Set) search(id bstid.ID) (int, bool) {
	return slices.BinarySearchFunc(s.ids, id, bstid.ID.Compare)
}
