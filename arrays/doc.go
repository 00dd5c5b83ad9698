// Package arrays provides index-based helpers over gonum matrices and
// integer ranges.
package arrays
