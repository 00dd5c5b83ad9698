package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wrangle/dsp/filter/biquad"
)

var (
	// ErrInvalidOrder is returned for orders < 1.
	ErrInvalidOrder = errors.New("design: order must be >= 1")
	// ErrInvalidFrequency is returned for cut-offs outside (0, sampleRate/2).
	ErrInvalidFrequency = errors.New("design: frequency must be in (0, sampleRate/2)")
)

func validate(order int, sampleRate float64, freqs ...float64) error {
	if order < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	for _, f := range freqs {
		if !(sampleRate > 0) || !(f > 0) || f >= sampleRate/2 {
			return fmt.Errorf("%w: %g Hz at %g Hz", ErrInvalidFrequency, f, sampleRate)
		}
	}

	return nil
}

// butterworthQ returns the quality factor of biquad section index of an
// order-N Butterworth filter, index in [0, order/2).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	return 1 / (2 * math.Sin(theta))
}

// lowpassRBJ is the cookbook second-order lowpass at freq with quality q.
func lowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b1 := 1 - cw
	return normalize(b1/2, b1, b1/2, 1+alpha, -2*cw, 1-alpha)
}

// highpassRBJ is the cookbook second-order highpass at freq with quality q.
func highpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b1 := 1 + cw
	return normalize(b1/2, -b1, b1/2, 1+alpha, -2*cw, 1-alpha)
}

func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{B0: k * norm, B1: k * norm, A1: (k - 1) * norm}
}

func firstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{B0: norm, B1: -norm, A1: (k - 1) * norm}
}

func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	inv := 1 / a0

	return biquad.Coefficients{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}
}
