package arrays

import (
	"fmt"
	"math/rand/v2"
)

// Range returns the values start, start+step, ... up to but excluding end.
// A negative step counts down.
func Range(start, end, step int) ([]int, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}

	var out []int
	if step > 0 {
		for v := start; v < end; v += step {
			out = append(out, v)
		}
	} else {
		for v := start; v > end; v += step {
			out = append(out, v)
		}
	}
	return out, nil
}

// RandIndices draws num distinct values from Range(start, end, step) in
// random order. A nil rng uses the global source.
func RandIndices(rng *rand.Rand, num, start, end, step int) ([]int, error) {
	pool, err := Range(start, end, step)
	if err != nil {
		return nil, err
	}
	if num < 0 || num > len(pool) {
		return nil, fmt.Errorf("%w: want %d of %d", ErrTooMany, num, len(pool))
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	// Partial Fisher-Yates: the first num slots end up holding the sample.
	for i := range num {
		j := i + intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:num:num], nil
}
