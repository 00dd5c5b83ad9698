package table

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when frame columns differ in length.
	ErrLengthMismatch = errors.New("table: column length mismatch")
	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("table: duplicate column")
	// ErrNoColumn is returned when a named column does not exist.
	ErrNoColumn = errors.New("table: no such column")
	// ErrColumnType is returned when a column has another element type.
	ErrColumnType = errors.New("table: column type mismatch")
)

// Frame is an ordered set of equally long columns.
type Frame struct {
	cols  []Column
	index map[string]int
}

// NewFrame builds a frame from cols, keeping their order.
func NewFrame(cols ...Column) (*Frame, error) {
	f := &Frame{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for _, c := range cols {
		name := c.ColumnName()
		if _, dup := f.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		if len(f.cols) > 0 && c.Len() != f.cols[0].Len() {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d",
				ErrLengthMismatch, name, c.Len(), f.cols[0].Len())
		}
		f.index[name] = len(f.cols)
		f.cols = append(f.cols, c)
	}

	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f == nil || len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// NumColumns returns the number of columns.
func (f *Frame) NumColumns() int {
	if f == nil {
		return 0
	}
	return len(f.cols)
}

// Columns returns the columns in order. The slice must not be modified.
func (f *Frame) Columns() []Column {
	if f == nil {
		return nil
	}
	return f.cols
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, 0, f.NumColumns())
	for _, c := range f.Columns() {
		names = append(names, c.ColumnName())
	}
	return names
}

// Column looks up a column by name.
func (f *Frame) Column(name string) (Column, bool) {
	if f == nil {
		return nil, false
	}
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Select returns a frame with the columns for which keep is true.
func (f *Frame) Select(keep func(Column) bool) *Frame {
	out := &Frame{index: make(map[string]int)}
	for _, c := range f.Columns() {
		if keep(c) {
			out.index[c.ColumnName()] = len(out.cols)
			out.cols = append(out.cols, c)
		}
	}
	return out
}

// Slice returns the rows [start, end) of every column.
func (f *Frame) Slice(start, end int) *Frame {
	out := &Frame{
		cols:  make([]Column, len(f.cols)),
		index: f.index,
	}
	for i, c := range f.cols {
		out.cols[i] = c.Window(start, end)
	}
	return out
}

// Values returns the values of the named column as []T.
func Values[T any](f *Frame, name string) ([]T, error) {
	c, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	s, ok := c.(Series[T])
	if !ok {
		return nil, fmt.Errorf("%w: %q is %s", ErrColumnType, name, c.Kind())
	}
	return s.Values, nil
}

// SplitRealCategorical separates the floating point columns of f from the
// rest. Integer, string and other columns count as categorical.
func SplitRealCategorical(f *Frame) (numeric, categorical *Frame) {
	numeric = f.Select(func(c Column) bool { return !c.Kind().Categorical() })
	categorical = f.Select(func(c Column) bool { return c.Kind().Categorical() })
	return numeric, categorical
}
