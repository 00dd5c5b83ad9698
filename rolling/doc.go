// Package rolling cuts slices, matrices, series and frames into
// fixed-size windows.
//
// Windows start at 0, step, 2*step and so on, and only complete windows are
// returned. Window slices share the backing array of their input.
package rolling
