// Package geometry provides the homogeneous point and vector primitives the
// tracer is built on.
package geometry

import (
	"fmt"
	"math"
)

// Kind classifies a Tuple by its w component.
type Kind uint8

// A Tuple is a point when w is within Epsilon of 1 and a vector otherwise.
const (
	KindVector Kind = iota
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindVector:
		return "vector"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func kindOf(w float64) Kind {
	if Equal(w, 1.0) {
		return KindPoint
	}
	return KindVector
}

// Tuple is a point or vector in homogeneous coordinates. A Tuple whose w is
// within Epsilon of 1 is a point; anything else is a vector.
//
// Compare tuples with Equals. The == operator compares bits and is almost
// never what you want after arithmetic.
type Tuple struct {
	x, y, z, w float64
	kind       Kind
}

// NewTuple returns the tuple (x, y, z, w), classified from w.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{x: x, y: y, z: z, w: w, kind: kindOf(w)}
}

// Point returns a tuple with w = 1.
func Point(x, y, z float64) Tuple {
	return NewTuple(x, y, z, 1.0)
}

// Vector returns a tuple with w = 0.
func Vector(x, y, z float64) Tuple {
	return NewTuple(x, y, z, 0.0)
}

// X, Y, Z and W return the tuple's components.
func (t Tuple) X() float64 { return t.x }
func (t Tuple) Y() float64 { return t.y }
func (t Tuple) Z() float64 { return t.z }
func (t Tuple) W() float64 { return t.w }

// Kind returns the classification computed from w at construction.
func (t Tuple) Kind() Kind { return t.kind }

func (t Tuple) IsPoint() bool  { return t.kind == KindPoint }
func (t Tuple) IsVector() bool { return t.kind == KindVector }

// Equals reports whether every component of t and o is Equal.
func (t Tuple) Equals(o Tuple) bool {
	return Equal(t.x, o.x) &&
		Equal(t.y, o.y) &&
		Equal(t.z, o.z) &&
		Equal(t.w, o.w)
}

// Add returns the componentwise sum of t and o, w included. Adding two
// points yields w = 2, which classifies as a vector.
func (t Tuple) Add(o Tuple) Tuple {
	return NewTuple(t.x+o.x, t.y+o.y, t.z+o.z, t.w+o.w)
}

// Subtract returns the componentwise difference t - o.
func (t Tuple) Subtract(o Tuple) Tuple {
	return NewTuple(t.x-o.x, t.y-o.y, t.z-o.z, t.w-o.w)
}

// Negate returns -t, w included.
func (t Tuple) Negate() Tuple {
	return NewTuple(-t.x, -t.y, -t.z, -t.w)
}

// Multiply scales all four components by k.
func (t Tuple) Multiply(k float64) Tuple {
	return NewTuple(t.x*k, t.y*k, t.z*k, t.w*k)
}

// Divide divides all four components by k. A zero k yields Inf or NaN
// components.
func (t Tuple) Divide(k float64) Tuple {
	return NewTuple(t.x/k, t.y/k, t.z/k, t.w/k)
}

// Magnitude returns the Euclidean length of all four components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.x*t.x + t.y*t.y + t.z*t.z + t.w*t.w)
}

// IntMagnitude returns Magnitude truncated toward zero. Magnitudes at or
// beyond 2^63, +Inf included, saturate to math.MaxInt64 and NaN gives 0.
func (t Tuple) IntMagnitude() int64 {
	m := t.Magnitude()
	switch {
	case math.IsNaN(m):
		return 0
	case m >= 1<<63:
		return math.MaxInt64
	}
	return int64(m)
}

// Normalize divides t by its magnitude. The zero tuple normalizes to NaN.
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	return NewTuple(t.x/m, t.y/m, t.z/m, t.w/m)
}

// Dot returns the dot product of the x, y and z components of t and o.
// ok is false when t is a point.
func (t Tuple) Dot(o Tuple) (d float64, ok bool) {
	if t.IsPoint() {
		return 0, false
	}
	return t.x*o.x + t.y*o.y + t.z*o.z, true
}

// Cross returns the vector t × o. The w components are ignored and the
// result always has w = 0. ok is false when t is a point.
func (t Tuple) Cross(o Tuple) (c Tuple, ok bool) {
	if t.IsPoint() {
		return Tuple{}, false
	}
	return Vector(
		t.y*o.z-t.z*o.y,
		t.z*o.x-t.x*o.z,
		t.x*o.y-t.y*o.x,
	), true
}

func (t Tuple) String() string {
	return fmt.Sprintf("%s(%g, %g, %g, %g)", t.kind, t.x, t.y, t.z, t.w)
}
