package table

// Kind classifies the element type of a column.
type Kind int

const (
	KindOther Kind = iota
	// KindReal covers floating point columns.
	KindReal
	// KindInteger covers signed and unsigned integer columns.
	KindInteger
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "other"
	}
}

// Categorical reports whether columns of this kind are treated as labels
// rather than measurements. Only real columns are not categorical.
func (k Kind) Categorical() bool {
	return k != KindReal
}

// Column is a named sequence held by a Frame.
type Column interface {
	ColumnName() string
	Len() int
	Kind() Kind
	// Window returns the rows [start, end) as a column sharing storage.
	Window(start, end int) Column
}

// Series is a named slice of values.
type Series[T any] struct {
	Name   string
	Values []T
}

type (
	Float64Column = Series[float64]
	IntColumn     = Series[int]
	StringColumn  = Series[string]
)

// NewSeries returns a series named name over values.
func NewSeries[T any](name string, values []T) Series[T] {
	return Series[T]{Name: name, Values: values}
}

func (s Series[T]) ColumnName() string { return s.Name }

func (s Series[T]) Len() int { return len(s.Values) }

func (s Series[T]) Kind() Kind {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return KindReal
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case string:
		return KindString
	case bool:
		return KindBool
	default:
		return KindOther
	}
}

// Slice returns the rows [start, end) sharing storage with s.
func (s Series[T]) Slice(start, end int) Series[T] {
	return Series[T]{Name: s.Name, Values: s.Values[start:end:end]}
}

func (s Series[T]) Window(start, end int) Column {
	return s.Slice(start, end)
}
