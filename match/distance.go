package match

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

var errLength = errors.New("match: rows differ in length")

// L1 returns the sum of absolute elementwise differences of a and b.
func L1(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errLength
	}
	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, 1), nil
}

func rowDistance(a, b []float64, i, j int) (float64, error) {
	d, err := L1(a, b)
	if err != nil {
		return 0, &WidthError{I: i, J: j, WidthA: len(a), WidthB: len(b)}
	}

	return d, nil
}
