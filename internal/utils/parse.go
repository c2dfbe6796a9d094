// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

// ClampInt bounds n to the inclusive range [lo, hi].
//
// Example:
//
//	utils.ClampInt(25, 1, 20) // returns 20
//	utils.ClampInt(0, 1, 20)  // returns 1
//	utils.ClampInt(7, 1, 20)  // returns 7
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
