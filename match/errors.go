package match

import (
	"errors"
	"fmt"
)

// ErrEmptyArray is returned by the legacy exhaustion policy when the second
// array has no rows to fall back on.
var ErrEmptyArray = errors.New("match: second array is empty")

// WidthError reports two compared rows of different width.
type WidthError struct {
	I, J   int
	WidthA int
	WidthB int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("match: row width mismatch: a[%d] has %d columns, b[%d] has %d",
		e.I, e.WidthA, e.J, e.WidthB)
}
