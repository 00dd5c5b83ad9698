package rolling

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-wrangle/collect"
	"github.com/cwbudde/algo-wrangle/table"
)

var (
	// ErrInvalidSize is returned for window sizes < 1.
	ErrInvalidSize = errors.New("rolling: window size must be >= 1")
	// ErrInvalidStep is returned for step sizes < 1.
	ErrInvalidStep = errors.New("rolling: step must be >= 1")
	// ErrAxisOutOfBounds is returned for an axis other than 0, 1 or -1.
	ErrAxisOutOfBounds = errors.New("rolling: axis out of bounds")
	// ErrRagged is returned when matrix rows differ in length.
	ErrRagged = errors.New("rolling: rows differ in length")
)

func validate(size, step int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if step < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	return nil
}

// starts returns the offsets of the complete windows over n elements.
func starts(n, size, step int) []int {
	if size > n {
		return nil
	}
	out := make([]int, 0, (n-size)/step+1)
	for s := 0; s+size <= n; s += step {
		out = append(out, s)
	}
	return out
}

// Windows returns the windows of a. A window larger than a yields none.
func Windows[T any](a []T, size, step int) ([][]T, error) {
	if err := validate(size, step); err != nil {
		return nil, err
	}

	offs := starts(len(a), size, step)
	out := make([][]T, len(offs))
	for i, s := range offs {
		out[i] = a[s : s+size : s+size]
	}

	return out, nil
}

// Rows windows a matrix. Along axis 0 each window is a block of size rows;
// along axis 1 (or -1) every row is windowed on its own and the result is
// indexed [row][window][column].
func Rows(a [][]float64, size, step, axis int) ([][][]float64, error) {
	if err := validate(size, step); err != nil {
		return nil, err
	}
	for i := 1; i < len(a); i++ {
		if len(a[i]) != len(a[0]) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(a[i]), len(a[0]))
		}
	}

	switch axis {
	case 0:
		return Windows(a, size, step)
	case 1, -1:
		out := make([][][]float64, len(a))
		for i, row := range a {
			// validated above
			out[i], _ = Windows(row, size, step)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrAxisOutOfBounds, axis)
	}
}

// Series returns the windows of s, each keeping the series name.
func Series[T any](s table.Series[T], size, step int) ([]table.Series[T], error) {
	if err := validate(size, step); err != nil {
		return nil, err
	}

	offs := starts(s.Len(), size, step)
	out := make([]table.Series[T], len(offs))
	for i, o := range offs {
		out[i] = s.Slice(o, o+size)
	}

	return out, nil
}

// Frames returns one frame per window position, each holding the same
// columns in the same order as f.
func Frames(f *table.Frame, size, step int) ([]*table.Frame, error) {
	if err := validate(size, step); err != nil {
		return nil, err
	}

	offs := starts(f.Len(), size, step)
	byColumn := make(map[string][]table.Column, f.NumColumns())
	for _, c := range f.Columns() {
		wins := make([]table.Column, len(offs))
		for i, o := range offs {
			wins[i] = c.Window(o, o+size)
		}
		byColumn[c.ColumnName()] = wins
	}

	names := f.Names()
	records := collect.DictOfListsToListOfDicts(byColumn)
	out := make([]*table.Frame, len(records))
	for i, rec := range records {
		cols := make([]table.Column, len(names))
		for j, name := range names {
			cols[j] = rec[name]
		}
		frame, err := table.NewFrame(cols...)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		out[i] = frame
	}

	return out, nil
}
