package match

import "math"

// Pair holds one row of the first array and the row of the second array it
// was matched with. The slices alias the input rows.
type Pair struct {
	A, B []float64
}

// IndexPair holds the positions of a [Pair]: I in the first array, J in the
// second.
type IndexPair struct {
	I, J int
}

// Result is the output of a matching call. Pairs and Indices are parallel.
type Result struct {
	Pairs   []Pair
	Indices []IndexPair
}

// Len returns the number of matched pairs.
func (r Result) Len() int {
	return len(r.Indices)
}

func (r *Result) append(other Result) {
	r.Pairs = append(r.Pairs, other.Pairs...)
	r.Indices = append(r.Indices, other.Indices...)
}

// Greedy runs one matching pass of a against b.
//
// Rows of a are visited in index order, skipping indices in used1. Each
// visited row takes the unused row of b with the smallest L1 distance; on ties
// the lowest index wins. The pair is kept if no threshold is configured or the
// distance is <= the threshold, and its b index is added to used2 at once so
// later rows of the same pass cannot claim it. used1 is read but never
// modified; a nil used2 is replaced by a fresh set local to the call.
//
// A row with no finite candidate (b exhausted, or only NaN/Inf distances) is
// skipped, unless [WithLegacyExhaustion] is set.
func Greedy(a, b [][]float64, used1, used2 *UsedSet, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)

	return greedy(a, b, used1, used2, cfg.threshold, cfg)
}

func greedy(a, b [][]float64, used1, used2 *UsedSet, threshold float64, cfg config) (Result, error) {
	if used2 == nil {
		used2 = NewUsedSet()
	}

	var res Result

	for i, row := range a {
		if used1.Contains(i) {
			continue
		}

		bestDist := math.Inf(1)
		bestIdx := 0
		chosen := false

		for j, cand := range b {
			if used2.Contains(j) {
				continue
			}

			d, err := rowDistance(row, cand, i, j)
			if err != nil {
				return Result{}, err
			}
			if d < bestDist {
				bestDist = d
				bestIdx = j
				chosen = true
			}
		}

		if !chosen {
			if !cfg.legacy {
				continue
			}
			if len(b) == 0 {
				// b[0] is only touched when the threshold admits +Inf.
				if bestDist <= threshold {
					return Result{}, ErrEmptyArray
				}
				continue
			}
		}

		if bestDist <= threshold {
			res.Pairs = append(res.Pairs, Pair{A: row, B: b[bestIdx]})
			res.Indices = append(res.Indices, IndexPair{I: i, J: bestIdx})
			used2.Add(bestIdx)
		}
	}

	return res, nil
}
