// Package design computes Butterworth filter coefficients as cascades of
// biquad sections.
//
// Lowpass and highpass designs use the classic Butterworth-Q cascade: one
// RBJ section per conjugate pole pair plus a first-order section for odd
// orders. The bandpass design maps the analog Butterworth prototype to the
// band with the lowpass-to-bandpass transform and discretizes it with the
// bilinear transform; an order-N bandpass has N sections.
//
// All band edges are prewarped, so the -3 dB points land on the requested
// frequencies.
package design
