// Package biquad provides second-order IIR filter sections and cascades.
//
// A [Section] implements Direct Form II Transposed processing for one
// [Coefficients] set. A [Chain] cascades sections for higher-order designs
// such as Butterworth filters and can be primed with the steady state for a
// constant input, which is what zero-phase (forward-backward) filtering
// needs to avoid edge transients.
//
// Coefficient design lives in dsp/filter/design.
package biquad
