package arrays

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// QuadraticSubarray returns the len(indices) square matrix whose element
// (i, j) is m.At(indices[i], indices[j]). Every index must be valid for both
// dimensions of m.
func QuadraticSubarray(indices []int, m mat.Matrix) (*mat.Dense, error) {
	if len(indices) == 0 {
		return nil, ErrNoIndices
	}

	r, c := m.Dims()
	for _, idx := range indices {
		if idx < 0 || idx >= r || idx >= c {
			return nil, fmt.Errorf("%w: %d for a %dx%d matrix", ErrIndexOutOfRange, idx, r, c)
		}
	}

	n := len(indices)
	sub := mat.NewDense(n, n, nil)
	for i, ii := range indices {
		for j, jj := range indices {
			sub.Set(i, j, m.At(ii, jj))
		}
	}

	return sub, nil
}
