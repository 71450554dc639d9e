// Package core provides the math primitives the tracer is built on: points,
// vectors, colors, rays, and 4x4 homogeneous matrices with their transform
// builder. All comparisons in this package are epsilon-tolerant; exact
// floating-point equality is never used.
package core

import "math"

// Epsilon is the tolerance used for all floating-point comparisons in the
// geometry and shading layers.
const Epsilon = 1e-4

// FloatEqual reports whether a and b are equal within Epsilon.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point represents a position in 3D space (homogeneous w=1).
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a vector.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubVec returns the point displaced against a vector.
func (p Point) SubVec(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equal reports whether two points are equal within Epsilon.
func (p Point) Equal(other Point) bool {
	return FloatEqual(p.X, other.X) && FloatEqual(p.Y, other.Y) && FloatEqual(p.Z, other.Z)
}

// Vector represents a direction and magnitude in 3D space (homogeneous w=0).
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a new Vector.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the vector pointing the opposite way.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Magnitude returns the length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return Vector{v.X / m, v.Y / m, v.Z / m}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Reflect returns v reflected around the given surface normal.
func (v Vector) Reflect(normal Vector) Vector {
	return v.Sub(normal.Multiply(2 * v.Dot(normal)))
}

// Equal reports whether two vectors are equal within Epsilon.
func (v Vector) Equal(other Vector) bool {
	return FloatEqual(v.X, other.X) && FloatEqual(v.Y, other.Y) && FloatEqual(v.Z, other.Z)
}
