// Package utils provides small, generic helpers shared across layers. The
// handlers use them to read numeric query and path parameters (page, limit,
// ids) without repeating strconv boilerplate.
package utils

import "strconv"

// AtoiDefault converts a string to an int, falling back to def when the
// string is empty or not a valid integer. An unparsable "page" or "limit"
// therefore degrades to the documented default instead of erroring, while an
// unparsable id becomes 0 and is rejected by the handler's own validation.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
