// Package regions groups sorted indices into contiguous half-open regions.
package regions

import "slices"

// Region is the half-open index range [Start, End).
type Region struct {
	Start int
	End   int
}

// Len returns the number of indices covered by r.
func (r Region) Len() int { return r.End - r.Start }

// Merge sorts a copy of indices and joins them into regions. An index
// extends the current region when it lies at most tolerance positions past
// its end. Empty input yields nil.
func Merge(indices []int, tolerance int) []Region {
	if len(indices) == 0 {
		return nil
	}

	sorted := slices.Clone(indices)
	slices.Sort(sorted)

	var out []Region
	cur := Region{Start: sorted[0], End: sorted[0] + 1}
	for _, idx := range sorted[1:] {
		if cur.End+tolerance >= idx {
			cur.End = idx + 1
			continue
		}
		out = append(out, cur)
		cur = Region{Start: idx, End: idx + 1}
	}

	return append(out, cur)
}
