// Package testutil holds signal generators and tolerance checks shared by the
// DSP package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// MixSines sums unit-amplitude sines at the given frequencies.
func MixSines(sampleRate float64, length int, freqs ...float64) []float64 {
	out := make([]float64, length)
	for _, f := range freqs {
		s := DeterministicSine(f, sampleRate, 1, length)
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ones returns a slice of length n filled with 1.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// RMS returns the root mean square of data[from:to].
func RMS(data []float64, from, to int) float64 {
	if to > len(data) {
		to = len(data)
	}
	if from < 0 {
		from = 0
	}
	if to <= from {
		return 0
	}
	var sum float64
	for _, v := range data[from:to] {
		sum += v * v
	}
	return math.Sqrt(sum / float64(to-from))
}
