package filter

import (
	"github.com/cwbudde/algo-wrangle/dsp/filter/design"
	"github.com/cwbudde/algo-wrangle/dsp/filter/fir"
)

// KaiserResult is the output of KaiserLowpass.
type KaiserResult struct {
	// Output is the causally filtered signal, same length as the input.
	Output []float64
	// NumTaps is the FIR length chosen by the Kaiser formula.
	NumTaps int
	// Delay is the group delay of the filter in seconds.
	Delay float64
}

// DelaySamples returns the group delay in whole samples.
func (r KaiserResult) DelaySamples() int {
	return (r.NumTaps - 1) / 2
}

// Aligned returns Output with the group delay removed from its start. The
// result is DelaySamples shorter than Output.
func (r KaiserResult) Aligned() []float64 {
	d := min(r.DelaySamples(), len(r.Output))
	return r.Output[d:]
}

// KaiserLowpass filters x with a Kaiser-window FIR lowpass at cutoffHz.
// The tap count follows from WithRippleDB and WithTransitionWidth.
func KaiserLowpass(x []float64, cutoffHz float64, opts ...Option) (KaiserResult, error) {
	cfg := applyOptions(opts)
	nyq := cfg.sampleRate / 2

	numTaps, beta, err := fir.KaiserOrder(cfg.rippleDB, cfg.transitionWidth/nyq)
	if err != nil {
		return KaiserResult{}, err
	}

	taps, err := fir.WindowedLowpass(numTaps, cutoffHz/nyq, beta)
	if err != nil {
		return KaiserResult{}, err
	}

	return KaiserResult{
		Output:  fir.New(taps).Process(x),
		NumTaps: numTaps,
		Delay:   0.5 * float64(numTaps-1) / cfg.sampleRate,
	}, nil
}

// Lowpass applies a zero-phase Butterworth lowpass with cutoff highHz.
func Lowpass(x []float64, highHz float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)

	sections, err := design.ButterworthLP(highHz, cfg.order, cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	return FiltFilt(sections, x)
}

// Highpass applies a zero-phase Butterworth highpass with cutoff lowHz.
func Highpass(x []float64, lowHz float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)

	sections, err := design.ButterworthHP(lowHz, cfg.order, cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	return FiltFilt(sections, x)
}

// Bandpass applies a zero-phase Butterworth bandpass passing [lowHz, highHz].
func Bandpass(x []float64, lowHz, highHz float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)

	sections, err := design.ButterworthBP(lowHz, highHz, cfg.order, cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	return FiltFilt(sections, x)
}
