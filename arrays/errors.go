package arrays

import "errors"

var (
	// ErrNoIndices is returned when a sub-matrix is requested for no indices.
	ErrNoIndices = errors.New("arrays: no indices")
	// ErrIndexOutOfRange is returned when an index exceeds a matrix dimension.
	ErrIndexOutOfRange = errors.New("arrays: index out of range")
	// ErrZeroStep is returned for a range step of 0.
	ErrZeroStep = errors.New("arrays: step must not be zero")
	// ErrTooMany is returned when more distinct values are requested than
	// the range holds.
	ErrTooMany = errors.New("arrays: not enough values in range")
)
