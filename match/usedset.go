package match

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// UsedSet holds row indices already consumed by a match. It only grows.
//
// The zero value is not usable; create sets with [NewUsedSet]. A nil *UsedSet
// passed to [Greedy] is treated as empty.
type UsedSet struct {
	bm *roaring.Bitmap
}

// NewUsedSet returns an empty set, optionally seeded with indices.
func NewUsedSet(indices ...int) *UsedSet {
	s := &UsedSet{bm: roaring.New()}
	for _, i := range indices {
		s.Add(i)
	}

	return s
}

// Add marks index i as used. Indices outside [0, math.MaxUint32] are
// ignored.
func (s *UsedSet) Add(i int) {
	if !inRange(i) {
		return
	}
	s.bm.Add(uint32(i))
}

// Contains reports whether index i is used.
func (s *UsedSet) Contains(i int) bool {
	if s == nil || !inRange(i) {
		return false
	}

	return s.bm.Contains(uint32(i))
}

// Len returns the number of used indices.
func (s *UsedSet) Len() int {
	if s == nil {
		return 0
	}

	return int(s.bm.GetCardinality())
}

// Indices returns the used indices in ascending order.
func (s *UsedSet) Indices() []int {
	if s == nil {
		return nil
	}
	raw := s.bm.ToArray()
	out := make([]int, len(raw))
	for k, v := range raw {
		out[k] = int(v)
	}

	return out
}

// inRange reports whether i is representable in the bitmap.
func inRange(i int) bool {
	return i >= 0 && uint64(i) <= math.MaxUint32
}
