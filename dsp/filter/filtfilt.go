package filter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-wrangle/dsp/filter/biquad"
)

// ErrShortInput is returned when the signal is not longer than the
// edge extension of FiltFilt.
var ErrShortInput = errors.New("filter: input must be longer than the padding")

// PadLen returns the number of samples FiltFilt adds at each edge for a
// cascade: three times the length of its transfer-function polynomials.
func PadLen(sections []biquad.Coefficients) int {
	return 3 * (biquad.NewChain(sections).Order() + 1)
}

// FiltFilt filters x forward and then backward through the cascade.
//
// The signal is extended at both ends by PadLen samples of odd reflection
// (2*x[0] - x[k]) and each direction starts from the steady state for its
// first sample, so constant and slowly varying signals pass without edge
// transients.
func FiltFilt(sections []biquad.Coefficients, x []float64) ([]float64, error) {
	pad := PadLen(sections)
	if len(x) <= pad {
		return nil, fmt.Errorf("%w: len %d <= %d", ErrShortInput, len(x), pad)
	}

	ext := oddExtend(x, pad)
	chain := biquad.NewChain(sections)

	chain.Prime(ext[0])
	chain.ProcessBlock(ext)

	slices.Reverse(ext)
	chain.Reset()
	chain.Prime(ext[0])
	chain.ProcessBlock(ext)
	slices.Reverse(ext)

	return slices.Clone(ext[pad : len(ext)-pad]), nil
}

func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	first, last := x[0], x[n-1]

	ext := make([]float64, 0, n+2*pad)
	for k := pad; k >= 1; k-- {
		ext = append(ext, 2*first-x[k])
	}
	ext = append(ext, x...)
	for k := n - 2; k >= n-1-pad; k-- {
		ext = append(ext, 2*last-x[k])
	}

	return ext
}
