package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-wrangle/dsp/filter/biquad"
)

// ButterworthLP designs an order-N lowpass Butterworth cascade with its
// -3 dB point at freq. Odd orders end with a first-order section.
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validate(order, sampleRate, freq); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}

	return sections, nil
}

// ButterworthHP designs an order-N highpass Butterworth cascade with its
// -3 dB point at freq. Odd orders end with a first-order section.
func ButterworthHP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validate(order, sampleRate, freq); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, highpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderHP(freq, sampleRate))
	}

	return sections, nil
}

// ButterworthBP designs an order-N bandpass Butterworth cascade passing
// [low, high]. The transfer function has order 2N, split into N sections,
// and unity gain at the geometric centre of the (prewarped) band.
func ButterworthBP(low, high float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validate(order, sampleRate, low, high); err != nil {
		return nil, err
	}
	if low >= high {
		return nil, fmt.Errorf("%w: low %g Hz >= high %g Hz", ErrInvalidFrequency, low, high)
	}

	fs2 := 2 * sampleRate
	wl := fs2 * math.Tan(math.Pi*low/sampleRate)
	wh := fs2 * math.Tan(math.Pi*high/sampleRate)
	bw := complex(wh-wl, 0)
	w0sq := complex(wl*wh, 0)

	bilinear := func(s complex128) complex128 {
		return (complex(fs2, 0) + s) / (complex(fs2, 0) - s)
	}

	sections := make([]biquad.Coefficients, 0, order)
	for k := range (order + 1) / 2 {
		p := cmplx.Exp(complex(0, math.Pi*float64(2*k+order+1)/float64(2*order)))

		// s^2 - p*bw*s + w0^2 = 0 maps one prototype pole to two band poles.
		disc := cmplx.Sqrt(p*p*bw*bw - 4*w0sq)
		z1 := bilinear((p*bw + disc) / 2)
		z2 := bilinear((p*bw - disc) / 2)

		if k < order/2 {
			sections = append(sections, bandSection(conjugatePoly(z1)), bandSection(conjugatePoly(z2)))
			continue
		}
		// Real prototype pole: its two band poles form one section.
		sections = append(sections, bandSection(real(-(z1+z2)), real(z1*z2)))
	}

	centre := 2 * math.Atan(math.Sqrt(wl*wh)/fs2) * sampleRate / (2 * math.Pi)
	g := cmplx.Abs(biquad.NewChain(sections).Response(centre, sampleRate))
	if g > 0 && !math.IsInf(g, 0) {
		sections[0].B0 /= g
		sections[0].B2 /= g
	}

	return sections, nil
}

// conjugatePoly returns a1, a2 of (1 - z z^-1)(1 - conj(z) z^-1).
func conjugatePoly(z complex128) (float64, float64) {
	return -2 * real(z), real(z)*real(z) + imag(z)*imag(z)
}

// bandSection has one zero at z = 1 and one at z = -1.
func bandSection(a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{B0: 1, B1: 0, B2: -1, A1: a1, A2: a2}
}
