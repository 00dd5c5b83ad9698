// Package fir provides a direct-form FIR filter and Kaiser-window lowpass
// design.
//
// [KaiserOrder] estimates the tap count and Kaiser beta for a ripple and
// transition width; [WindowedLowpass] builds the windowed-sinc taps, scaled
// to unity gain at DC. A [Filter] runs the taps over a signal with zero
// initial state.
package fir
