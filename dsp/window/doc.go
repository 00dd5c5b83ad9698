// Package window generates symmetric window functions on the numpy sample
// grid (np.hanning, np.hamming, np.bartlett, np.blackman, np.kaiser).
//
// These are the windows used for signal smoothing and windowed-sinc FIR
// design. Sample n of a length-N window is evaluated at n/(N-1).
package window
