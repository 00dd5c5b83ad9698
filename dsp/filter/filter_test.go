package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wrangle/dsp/filter/biquad"
	"github.com/cwbudde/algo-wrangle/dsp/filter/design"
	"github.com/cwbudde/algo-wrangle/dsp/filter/fir"
	"github.com/cwbudde/algo-wrangle/internal/testutil"
)

const sr = 16000.0

func maxAbsDiffRange(t *testing.T, a, b []float64, from, to int) float64 {
	t.Helper()
	d, err := testutil.MaxAbsDiff(a[from:to], b[from:to])
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestFiltFiltConstant(t *testing.T) {
	sections, err := design.ButterworthLP(800, 4, sr)
	if err != nil {
		t.Fatal(err)
	}
	x := make([]float64, 200)
	for i := range x {
		x[i] = 2.5
	}

	y, err := FiltFilt(sections, x)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, y, x, 1e-9)
}

func TestFiltFiltShortInput(t *testing.T) {
	sections, err := design.ButterworthLP(800, 3, sr)
	if err != nil {
		t.Fatal(err)
	}
	if PadLen(sections) != 12 {
		t.Fatalf("PadLen=%d, want 12", PadLen(sections))
	}
	if _, err := FiltFilt(sections, testutil.Ones(12)); !errors.Is(err, ErrShortInput) {
		t.Fatalf("got %v, want ErrShortInput", err)
	}
	if _, err := FiltFilt(sections, testutil.Ones(13)); err != nil {
		t.Fatalf("13 samples: %v", err)
	}
}

func TestOddExtend(t *testing.T) {
	got := oddExtend([]float64{1, 2, 4, 8}, 2)
	want := []float64{-2, 0, 1, 2, 4, 8, 12, 14}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestFiltFiltDoublesAttenuation(t *testing.T) {
	sections, err := design.ButterworthLP(1000, 2, sr)
	if err != nil {
		t.Fatal(err)
	}
	x := testutil.DeterministicSine(2000, sr, 1, 4000)

	y, err := FiltFilt(sections, x)
	if err != nil {
		t.Fatal(err)
	}

	gain := math.Pow(10, biquad.NewChain(sections).MagnitudeDB(2000, sr)/20)
	got := testutil.RMS(y, 1000, 3000) / testutil.RMS(x, 1000, 3000)
	if math.Abs(got-gain*gain) > 1e-3 {
		t.Fatalf("rms ratio %v, want %v", got, gain*gain)
	}
}

func TestLowpassZeroPhase(t *testing.T) {
	want := testutil.DeterministicSine(100, sr, 1, 4000)
	x := testutil.MixSines(sr, 4000, 100, 3000)

	y, err := Lowpass(x, 500)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxAbsDiffRange(t, y, want, 500, 3500); d > 1e-3 {
		t.Fatalf("max deviation %v", d)
	}
}

func TestHighpassRemovesOffset(t *testing.T) {
	want := testutil.DeterministicSine(2000, sr, 1, 4000)
	x := make([]float64, len(want))
	for i := range x {
		x[i] = 5 + want[i]
	}

	y, err := Highpass(x, 200, WithOrder(4))
	if err != nil {
		t.Fatal(err)
	}
	if d := maxAbsDiffRange(t, y, want, 1000, 3000); d > 1e-3 {
		t.Fatalf("max deviation %v", d)
	}
}

func TestBandpassIsolatesBand(t *testing.T) {
	want := testutil.DeterministicSine(1000, sr, 1, 6000)
	x := testutil.MixSines(sr, 6000, 50, 1000, 6000)

	y, err := Bandpass(x, 500, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxAbsDiffRange(t, y, want, 1500, 4500); d > 5e-3 {
		t.Fatalf("max deviation %v", d)
	}
}

func TestButterworthHelpersRejectBadFrequencies(t *testing.T) {
	x := testutil.Ones(100)
	if _, err := Lowpass(x, sr); !errors.Is(err, design.ErrInvalidFrequency) {
		t.Fatalf("lowpass: %v", err)
	}
	if _, err := Highpass(x, 0); !errors.Is(err, design.ErrInvalidFrequency) {
		t.Fatalf("highpass: %v", err)
	}
	if _, err := Bandpass(x, 3000, 1000); !errors.Is(err, design.ErrInvalidFrequency) {
		t.Fatalf("bandpass: %v", err)
	}
}

func TestKaiserLowpass(t *testing.T) {
	const f = 100.0
	x := testutil.MixSines(sr, 3000, f, 2000)

	res, err := KaiserLowpass(x, 1000, WithTransitionWidth(200))
	if err != nil {
		t.Fatal(err)
	}

	wantTaps, _, err := fir.KaiserOrder(60, 200/(sr/2))
	if err != nil {
		t.Fatal(err)
	}
	if res.NumTaps != wantTaps {
		t.Fatalf("NumTaps=%d, want %d", res.NumTaps, wantTaps)
	}
	if want := 0.5 * float64(wantTaps-1) / sr; math.Abs(res.Delay-want) > 1e-15 {
		t.Fatalf("Delay=%v, want %v", res.Delay, want)
	}
	if len(res.Output) != len(x) {
		t.Fatalf("len=%d, want %d", len(res.Output), len(x))
	}

	// Past the start-up the output is the 100 Hz tone delayed by Delay.
	for n := res.NumTaps; n < len(x); n++ {
		want := math.Sin(2 * math.Pi * f * (float64(n)/sr - res.Delay))
		if math.Abs(res.Output[n]-want) > 5e-3 {
			t.Fatalf("sample %d: got %v, want %v", n, res.Output[n], want)
		}
	}

	if got := len(res.Aligned()); got != len(x)-res.DelaySamples() {
		t.Fatalf("aligned len=%d", got)
	}
}

func TestKaiserLowpassDefaults(t *testing.T) {
	res, err := KaiserLowpass(testutil.Ones(64), 1000)
	if err != nil {
		t.Fatal(err)
	}
	wantTaps, _, _ := fir.KaiserOrder(60, 5/(sr/2))
	if res.NumTaps != wantTaps {
		t.Fatalf("NumTaps=%d, want %d", res.NumTaps, wantTaps)
	}
	if len(res.Aligned()) != 0 {
		t.Fatalf("aligned output of a short signal should be empty, got %d", len(res.Aligned()))
	}
}

func TestKaiserLowpassInvalidCutoff(t *testing.T) {
	if _, err := KaiserLowpass(testutil.Ones(10), sr, WithTransitionWidth(400)); !errors.Is(err, fir.ErrInvalidCutoff) {
		t.Fatalf("got %v, want ErrInvalidCutoff", err)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	cfg := applyOptions([]Option{WithSampleRate(-1), WithOrder(0), WithRippleDB(0), WithTransitionWidth(-5), nil})
	if cfg != defaultConfig() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
	cfg = applyOptions([]Option{WithSampleRate(8000), WithOrder(5), WithRippleDB(40), WithTransitionWidth(50)})
	if cfg.sampleRate != 8000 || cfg.order != 5 || cfg.rippleDB != 40 || cfg.transitionWidth != 50 {
		t.Fatalf("options not applied: %+v", cfg)
	}
}
