// Package smooth smooths signals by convolution with a normalised window.
//
// The signal is extended at both ends by point-reflected copies of itself so
// that the output has no start-up transient. The output has the length of
// the input.
package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wrangle/dsp/conv"
	"github.com/cwbudde/algo-wrangle/dsp/window"
)

const (
	// DefaultWindowLen is the customary smoothing window length.
	DefaultWindowLen = 10
	// DefaultWindow is the customary smoothing window.
	DefaultWindow = window.Hanning
)

// ErrShortInput is returned when the signal is shorter than the window.
var ErrShortInput = errors.New("smooth: input must not be shorter than the window")

// Smooth returns x convolved with the normalised window of type t and length
// windowLen. Windows shorter than 3 samples return a copy of x.
func Smooth(x []float64, windowLen int, t window.Type) ([]float64, error) {
	if len(x) < windowLen {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortInput, len(x), windowLen)
	}
	if windowLen < 3 {
		return append([]float64(nil), x...), nil
	}

	w, err := window.New(t, windowLen)
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, v := range w {
		sum += v
	}
	vecmath.ScaleBlock(w, w, 1/sum)

	s := reflectPad(x, windowLen)

	y, err := conv.Same(w, s)
	if err != nil {
		return nil, err
	}

	return y[windowLen-1 : len(y)-windowLen+1], nil
}

// reflectPad surrounds x with 2*x[0]-x[wl:1:-1] and 2*x[n-1]-x[n-1:n-wl:-1].
// The leading reflection is clipped to the signal like a slice would be.
func reflectPad(x []float64, wl int) []float64 {
	n := len(x)
	first, last := x[0], x[n-1]

	start := min(wl, n-1)
	s := make([]float64, 0, n+2*(wl-1))
	for i := start; i > 1; i-- {
		s = append(s, 2*first-x[i])
	}
	s = append(s, x...)
	for i := n - 1; i > n-wl; i-- {
		s = append(s, 2*last-x[i])
	}

	return s
}
