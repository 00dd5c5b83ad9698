package biquad

import (
	"math"
	"math/cmplx"
)

// Coefficients holds the transfer function of one second-order section with
// a0 normalized to 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// A first-order section has B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// FirstOrder reports whether the section is first order.
func (c Coefficients) FirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

// DCGain returns H(1). It is +Inf when the denominator has a root at z = 1.
func (c Coefficients) DCGain() float64 {
	den := 1 + c.A1 + c.A2
	if den == 0 {
		return math.Inf(1)
	}

	return (c.B0 + c.B1 + c.B2) / den
}

// Response returns H(e^jw) at freqHz for the given sample rate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// Section is a biquad with Direct Form II Transposed state:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// Prime sets the state reached after a constant input u has been applied for
// ever, and returns the matching constant output.
func (s *Section) Prime(u float64) float64 {
	y := u * s.DCGain()
	if math.IsInf(y, 0) || math.IsNaN(y) {
		s.Reset()
		return 0
	}

	s.d1 = s.B2*u - s.A2*y
	s.d0 = s.B1*u - s.A1*y + s.d1

	return y
}

// Reset clears the state.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the delay-line state.
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}
