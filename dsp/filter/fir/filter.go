package fir

import (
	"math"
	"math/cmplx"
)

// Filter implements a direct-form FIR filter using a circular-buffer delay
// line.
type Filter struct {
	coeffs []float64
	delay  []float64
	pos    int
}

// New creates a filter from a copy of coeffs.
func New(coeffs []float64) *Filter {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Filter{
		coeffs: c,
		delay:  make([]float64, len(coeffs)),
	}
}

// ProcessSample filters one input sample:
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.coeffs)
	if n == 0 {
		return 0
	}

	f.delay[f.pos] = x
	var y float64
	p := f.pos
	for k := range n {
		y += f.coeffs[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// Process filters src and returns a new slice of the same length.
func (f *Filter) Process(src []float64) []float64 {
	dst := make([]float64, len(src))
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
	return dst
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	for i := range f.delay {
		f.delay[i] = 0
	}
	f.pos = 0
}

// NumTaps returns the number of coefficients.
func (f *Filter) NumTaps() int {
	return len(f.coeffs)
}

// Coefficients returns a copy of the taps.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// MagnitudeDB returns 20*log10(|H|) at freqHz.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return 20 * math.Log10(cmplx.Abs(h))
}
