package geometry

const (
	// Epsilon is the absolute tolerance used whenever two float64 values are
	// compared in this package.
	Epsilon = 0.00001
)
