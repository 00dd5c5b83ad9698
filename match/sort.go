package match

import (
	"cmp"
	"slices"
)

// SortRows returns the rows of a ordered lexicographically, column 0 first.
// Equal rows keep their relative order. The input is not modified; the
// returned slice shares row storage with a.
func SortRows(a [][]float64) [][]float64 {
	out := slices.Clone(a)
	slices.SortStableFunc(out, compareRows)

	return out
}

func compareRows(x, y []float64) int {
	n := min(len(x), len(y))
	for k := range n {
		if c := cmp.Compare(x[k], y[k]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(x), len(y))
}
