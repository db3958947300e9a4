package internal

import "github.com/rivo/uniseg"

// WordLength returns the number of user-perceived characters in word
func WordLength(word string) int {
	return uniseg.GraphemeClusterCount(word)
}

// LengthFilter accepts words whose length lies within [Min, Max].
// A zero bound is not checked.
type LengthFilter struct {
	Min int
	Max int
}

// IsZero reports whether the filter accepts every word
func (f LengthFilter) IsZero() bool {
	return f.Min <= 0 && f.Max <= 0
}

// Keep reports whether word passes the filter
func (f LengthFilter) Keep(word string) bool {
	if f.IsZero() {
		return true
	}
	n := WordLength(word)
	if f.Min > 0 && n < f.Min {
		return false
	}
	return f.Max <= 0 || n <= f.Max
}
