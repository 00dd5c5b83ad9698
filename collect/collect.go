package collect

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrEmpty is returned when a conversion needs at least one element.
	ErrEmpty = errors.New("collect: empty input")
	// ErrMissingKey is returned when a record lacks a key of the first record.
	ErrMissingKey = errors.New("collect: missing key")
)

// DictOfListsToListOfDicts turns a map of columns into one map per row.
// Columns of unequal length are truncated to the shortest one, so an empty
// column yields no rows.
func DictOfListsToListOfDicts[K comparable, V any](dl map[K][]V) []map[K]V {
	if len(dl) == 0 {
		return nil
	}

	n := -1
	for _, col := range dl {
		if n < 0 || len(col) < n {
			n = len(col)
		}
	}

	out := make([]map[K]V, n)
	for i := range out {
		row := make(map[K]V, len(dl))
		for k, col := range dl {
			row[k] = col[i]
		}
		out[i] = row
	}

	return out
}

// ListOfDictsToDictOfLists turns records into columns. The keys are taken
// from the first record; every other record must carry them too.
func ListOfDictsToDictOfLists[K comparable, V any](ld []map[K]V) (map[K][]V, error) {
	if len(ld) == 0 {
		return nil, ErrEmpty
	}

	out := make(map[K][]V, len(ld[0]))
	for k := range ld[0] {
		col := make([]V, len(ld))
		for i, rec := range ld {
			v, ok := rec[k]
			if !ok {
				return nil, fmt.Errorf("%w: %v in record %d", ErrMissingKey, k, i)
			}
			col[i] = v
		}
		out[k] = col
	}

	return out, nil
}

// SortBy returns the elements of list ordered by the matching element of
// by. The sort is stable and the result is as long as the shorter input.
func SortBy[T any, K cmp.Ordered](list []T, by []K) []T {
	n := min(len(list), len(by))
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(by[a], by[b])
	})

	out := make([]T, n)
	for i, j := range idx {
		out[i] = list[j]
	}

	return out
}

// Merge returns a new map with the entries of a and b. Keys present in
// both take the value from b.
func Merge[K comparable, V any](a, b map[K]V) map[K]V {
	out := make(map[K]V, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// GetOr returns m[key], or def when key is absent.
func GetOr[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// WithDefaults returns a map with exactly the keys of defaults, taking each
// value from in where present. Keys of in missing from defaults are dropped.
func WithDefaults[K comparable, V any](in, defaults map[K]V) map[K]V {
	out := make(map[K]V, len(defaults))
	for k, def := range defaults {
		out[k] = GetOr(in, k, def)
	}
	return out
}
