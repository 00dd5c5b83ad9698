// Package table is a minimal column store: named typed series collected in
// an ordered frame. It carries just enough structure for windowing and for
// separating real-valued from categorical columns.
package table
