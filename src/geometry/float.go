package geometry

import "math"

// Equal reports whether a and b differ by less than Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
