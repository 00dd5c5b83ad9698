package window

import (
	"math"
	"strings"
)

// Type identifies a window function.
type Type int

const (
	// Flat is a rectangular window; smoothing with it is a moving average.
	Flat Type = iota
	Hanning
	Hamming
	Bartlett
	Blackman
	Kaiser
)

var names = map[Type]string{
	Flat:     "flat",
	Hanning:  "hanning",
	Hamming:  "hamming",
	Bartlett: "bartlett",
	Blackman: "blackman",
	Kaiser:   "kaiser",
}

// String returns the lower-case window name.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}

	return "unknown"
}

// ParseType maps a window name to its Type. "hann" is accepted for Hanning
// and "rectangular" for Flat.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "flat", "rectangular", "boxcar":
		return Flat, nil
	case "hanning", "hann":
		return Hanning, nil
	case "hamming":
		return Hamming, nil
	case "bartlett":
		return Bartlett, nil
	case "blackman":
		return Blackman, nil
	case "kaiser":
		return Kaiser, nil
	}

	return 0, unknownType(name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta float64
}

func defaultConfig() config {
	return config{beta: 14}
}

// WithBeta sets the Kaiser shape parameter. Negative values are ignored.
func WithBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// Generate returns symmetric window coefficients of the given length.
// The sample grid spans both endpoints, so a length-1 window is [1].
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	m := float64(length - 1)
	for i := range out {
		out[i] = evalWindow(t, float64(i), m, cfg)
	}

	return out
}

// New returns window coefficients, validating type and length.
func New(t Type, length int, opts ...Option) ([]float64, error) {
	if _, ok := names[t]; !ok {
		return nil, unknownType(t.String())
	}
	if err := validateLength(length); err != nil {
		return nil, err
	}

	return Generate(t, length, opts...), nil
}

// NewKaiser returns Kaiser window coefficients for shape parameter beta.
func NewKaiser(length int, beta float64) ([]float64, error) {
	if err := validateKaiser(length, beta); err != nil {
		return nil, err
	}

	return Generate(Kaiser, length, WithBeta(beta)), nil
}

// evalWindow evaluates sample n of a window spanning 0 … m.
func evalWindow(t Type, n, m float64, cfg config) float64 {
	switch t {
	case Flat:
		return 1
	case Hanning:
		return 0.5 - 0.5*math.Cos(2*math.Pi*n/m)
	case Hamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*n/m)
	case Bartlett:
		half := m / 2
		return (half - math.Abs(n-half)) / half
	case Blackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*n/m) + 0.08*math.Cos(4*math.Pi*n/m)
	case Kaiser:
		r := 2*n/m - 1
		return besselI0(cfg.beta*math.Sqrt(math.Max(0, 1-r*r))) / besselI0(cfg.beta)
	default:
		return 0
	}
}

// besselI0 evaluates the zeroth-order modified Bessel function of the first
// kind by its power series.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	q := x * x / 4
	for k := 1; k < 500; k++ {
		term *= q / float64(k*k)
		sum += term
		if term < sum*1e-17 {
			break
		}
	}

	return sum
}
