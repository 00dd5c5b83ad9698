// Package collect holds small generic helpers for maps and parallel slices:
// converting between a map of columns and a slice of records, sorting one
// slice by another and merging maps with defaults.
package collect
