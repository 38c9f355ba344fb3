// Package math3d provides the affine math primitives for the phong tracer.
package math3d

import "math"

// Epsilon is the absolute tolerance used by approximate comparisons.
const Epsilon = 1e-9

// Vec4 is a homogeneous 3D tuple. W is 1 for points and 0 for directions.
type Vec4 struct {
	X, Y, Z, W float64
}

// Point creates a position (w=1).
func Point(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

// Direction creates a direction (w=0). Directions ignore translation.
func Direction(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 0}
}

// Origin returns the point (0, 0, 0).
func Origin() Vec4 {
	return Point(0, 0, 0)
}

// Add returns the vector sum. A point plus a direction is a point.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference. A point minus a point is a direction.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Negate returns the negated vector.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product of the x, y and z components.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the x, y and z components.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the same direction, keeping W.
// A zero-length vector yields NaN components.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W}
}

// Reflect returns the reflection of v around normal n.
func (v Vec4) Reflect(n Vec4) Vec4 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Equal reports whether every component differs by less than Epsilon.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Vec4) Equal(b Vec4) bool {
	return math.Abs(a.X-b.X) < Epsilon &&
		math.Abs(a.Y-b.Y) < Epsilon &&
		math.Abs(a.Z-b.Z) < Epsilon &&
		math.Abs(a.W-b.W) < Epsilon
}

// RelativeEqual reports whether every component is equal within a tolerance
// scaled by the larger of the two magnitudes. It is the preferred comparison
// for values far from 1.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Vec4) RelativeEqual(b Vec4) bool {
	return NearlyEqual(a.X, b.X) &&
		NearlyEqual(a.Y, b.Y) &&
		NearlyEqual(a.Z, b.Z) &&
		NearlyEqual(a.W, b.W)
}

// NearlyEqual compares two floats with a relative tolerance, falling back to
// Epsilon near zero.
func NearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff < Epsilon {
		return true
	}
	return diff <= Epsilon*math.Max(math.Abs(a), math.Abs(b))
}
