package fir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wrangle/dsp/window"
)

var (
	// ErrRippleTooSmall is returned when the requested attenuation is below
	// the range of the Kaiser formulas.
	ErrRippleTooSmall = errors.New("fir: attenuation too small for the Kaiser formula")
	// ErrInvalidWidth is returned for non-positive transition widths.
	ErrInvalidWidth = errors.New("fir: transition width must be > 0")
	// ErrInvalidCutoff is returned for cut-offs outside (0, 1).
	ErrInvalidCutoff = errors.New("fir: cutoff must be in (0, 1)")
	// ErrInvalidTaps is returned for a tap count < 1.
	ErrInvalidTaps = errors.New("fir: numTaps must be >= 1")
)

// KaiserBeta returns the Kaiser shape parameter for a stop-band attenuation
// of a dB.
func KaiserBeta(a float64) float64 {
	switch {
	case a > 50:
		return 0.1102 * (a - 8.7)
	case a > 21:
		return 0.5842*math.Pow(a-21, 0.4) + 0.07886*(a-21)
	default:
		return 0
	}
}

// KaiserOrder estimates the number of taps and the Kaiser beta of a lowpass
// with rippleDB attenuation and a transition width given as a fraction of
// the Nyquist rate.
func KaiserOrder(rippleDB, width float64) (int, float64, error) {
	a := math.Abs(rippleDB)
	if a < 8 {
		return 0, 0, fmt.Errorf("%w: %g dB", ErrRippleTooSmall, a)
	}
	if !(width > 0) {
		return 0, 0, fmt.Errorf("%w: %g", ErrInvalidWidth, width)
	}

	taps := (a-7.95)/2.285/(math.Pi*width) + 1

	return int(math.Ceil(taps)), KaiserBeta(a), nil
}

// WindowedLowpass returns numTaps windowed-sinc lowpass taps for a cutoff
// given as a fraction of the Nyquist rate, shaped by a Kaiser window and
// scaled to unity gain at DC.
func WindowedLowpass(numTaps int, cutoff, beta float64) ([]float64, error) {
	if numTaps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, numTaps)
	}
	if !(cutoff > 0) || cutoff >= 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidCutoff, cutoff)
	}

	w, err := window.NewKaiser(numTaps, beta)
	if err != nil {
		return nil, err
	}

	alpha := 0.5 * float64(numTaps-1)
	h := make([]float64, numTaps)
	for n := range h {
		h[n] = cutoff * sinc(cutoff*(float64(n)-alpha))
	}
	vecmath.MulBlockInPlace(h, w)

	var sum float64
	for _, v := range h {
		sum += v
	}
	vecmath.ScaleBlock(h, h, 1/sum)

	return h, nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
