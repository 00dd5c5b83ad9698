package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-wrangle/internal/testutil"
)

func TestDirect(t *testing.T) {
	got, err := Direct([]float64{1, 2, 3}, []float64{0, 1, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 2.5, 4, 1.5}, 1e-12)
}

func TestDirectCommutes(t *testing.T) {
	a := testutil.DeterministicNoise(1, 1, 17)
	b := testutil.DeterministicNoise(2, 1, 5)

	ab, err := Direct(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Direct(b, a)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}

func TestDirectImpulse(t *testing.T) {
	sig := []float64{4, -1, 2, 7}
	got, err := Direct(sig, testutil.Impulse(3, 1))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 4, -1, 2, 7, 0}, 1e-12)
}

func TestSame(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"odd kernel", []float64{1, 2, 3}, []float64{0, 1, 0.5}, []float64{1, 2.5, 4}},
		{"even kernel", testutil.Ones(5), testutil.Ones(4), []float64{2, 3, 4, 4, 3}},
		{"kernel first", []float64{0, 1, 0.5}, []float64{1, 2, 3, 4}, []float64{1, 2.5, 4, 5.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Same(tc.a, tc.b)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tc.want, 1e-12)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Direct: got %v, want ErrEmptyInput", err)
	}
	if _, err := Same([]float64{1}, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Same: got %v, want ErrEmptyInput", err)
	}
}
