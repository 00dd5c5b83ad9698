package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned when an input slice is empty.
var ErrEmptyInput = errors.New("conv: empty input")

// Direct returns the full linear convolution of a and b, of length
// len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]float64, len(a)+len(b)-1)
	DirectTo(dst, a, b)

	return dst, nil
}

// DirectTo performs direct convolution into a pre-allocated destination of
// length len(a)+len(b)-1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	// Scale the shorter operand so the vector ops run over the longer one.
	if len(b) < len(a) {
		a, b = b, a
	}

	m := len(b)
	temp := make([]float64, m)

	for i, x := range a {
		vecmath.ScaleBlock(temp, b, x)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Same returns the central part of the full convolution with the length of
// the longer input, matching numpy's mode='same'.
func Same(a, b []float64) ([]float64, error) {
	full, err := Direct(a, b)
	if err != nil {
		return nil, err
	}

	n := max(len(a), len(b))
	short := min(len(a), len(b))
	offset := (short - 1) - short/2

	out := make([]float64, n)
	copy(out, full[offset:offset+n])

	return out, nil
}
