package fir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wrangle/internal/testutil"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewCopiesCoefficients(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)
	coeffs[0] = 999
	if f.Coefficients()[0] != 0.25 {
		t.Fatal("New did not copy coefficients")
	}
	if f.NumTaps() != 3 {
		t.Fatalf("NumTaps=%d, want 3", f.NumTaps())
	}
}

func TestImpulseResponse(t *testing.T) {
	coeffs := []float64{0.1, 0.2, 0.4, 0.2, 0.1}
	f := New(coeffs)
	got := f.Process(testutil.Impulse(8, 0))
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.1, 0.2, 0.4, 0.2, 0.1, 0, 0, 0}, eps)
}

func TestMovingAverage(t *testing.T) {
	f := New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	got := f.Process([]float64{3, 6, 9, 12})
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 3, 6, 9}, eps)

	f.Reset()
	if y := f.ProcessSample(3); !almostEqual(y, 1, eps) {
		t.Fatalf("after Reset: got %v, want 1", y)
	}
}

func TestEmptyFilter(t *testing.T) {
	if y := New(nil).ProcessSample(1); y != 0 {
		t.Fatalf("got %v, want 0", y)
	}
}

func TestKaiserOrder(t *testing.T) {
	tests := []struct {
		ripple, width float64
		taps          int
		beta          float64
	}{
		{65, 24.0 / 500, 167, 6.20426},
		{60, 5.0 / 8000, 11603, 5.65326},
		{40, 0.1, 46, 3.3953210522614574},
		{-40, 0.1, 46, 3.3953210522614574},
	}
	for _, tc := range tests {
		taps, beta, err := KaiserOrder(tc.ripple, tc.width)
		if err != nil {
			t.Fatal(err)
		}
		if taps != tc.taps || !almostEqual(beta, tc.beta, 1e-9) {
			t.Fatalf("KaiserOrder(%v, %v) = %d, %v; want %d, %v", tc.ripple, tc.width, taps, beta, tc.taps, tc.beta)
		}
	}

	if _, _, err := KaiserOrder(5, 0.1); !errors.Is(err, ErrRippleTooSmall) {
		t.Fatalf("got %v, want ErrRippleTooSmall", err)
	}
	if _, _, err := KaiserOrder(60, 0); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("got %v, want ErrInvalidWidth", err)
	}
}

func TestKaiserBetaRegions(t *testing.T) {
	if KaiserBeta(20) != 0 {
		t.Fatal("beta must be 0 below 21 dB")
	}
	if !almostEqual(KaiserBeta(60), 0.1102*51.3, eps) {
		t.Fatalf("beta(60)=%v", KaiserBeta(60))
	}
}

func TestWindowedLowpass(t *testing.T) {
	const sr = 1000.0
	taps, beta, err := KaiserOrder(60, 50/(sr/2))
	if err != nil {
		t.Fatal(err)
	}
	h, err := WindowedLowpass(taps, 100/(sr/2), beta)
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != taps {
		t.Fatalf("len=%d, want %d", len(h), taps)
	}

	var sum float64
	for _, v := range h {
		sum += v
	}
	if !almostEqual(sum, 1, 1e-12) {
		t.Fatalf("DC gain=%v, want 1", sum)
	}
	for i := range taps / 2 {
		if !almostEqual(h[i], h[taps-1-i], 1e-15) {
			t.Fatalf("taps not symmetric at %d", i)
		}
	}

	f := New(h)
	if db := f.MagnitudeDB(20, sr); math.Abs(db) > 0.02 {
		t.Fatalf("passband %.4f dB", db)
	}
	if db := f.MagnitudeDB(200, sr); db > -55 {
		t.Fatalf("stopband only %.2f dB", db)
	}
}

func TestWindowedLowpassInvalid(t *testing.T) {
	if _, err := WindowedLowpass(0, 0.5, 1); !errors.Is(err, ErrInvalidTaps) {
		t.Fatalf("got %v", err)
	}
	if _, err := WindowedLowpass(11, 1, 1); !errors.Is(err, ErrInvalidCutoff) {
		t.Fatalf("got %v", err)
	}
	if _, err := WindowedLowpass(11, 0.5, -1); err == nil {
		t.Fatal("expected error for negative beta")
	}
}
