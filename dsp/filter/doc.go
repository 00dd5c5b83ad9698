// Package filter applies common filters to whole signals.
//
// [KaiserLowpass] runs a Kaiser-window FIR lowpass causally and reports the
// tap count and group delay. [Lowpass], [Highpass] and [Bandpass] apply
// Butterworth designs forward and backward with [FiltFilt], which doubles the
// attenuation and cancels the phase shift.
//
// Sample rate, order and the Kaiser parameters are set with options; the
// defaults target 16 kHz audio.
package filter
