// Package conv provides time-domain linear convolution.
//
// [Direct] returns the full convolution and [Same] its centred part with the
// length of the longer input. Both are O(N*M) and intended for the short
// kernels used in smoothing and FIR design.
package conv
