package teststat

import "math"

// test helper: signbit at float32 precision, used to tell the negative-zero
// gauge sentinel apart from a plain zero.
// Placed in a _test.go file so it is test-only and not part of the public API.
func signbit(v float32) bool {
	return math.Signbit(float64(v))
}
