package core

// Ray is a half-line with an origin point and a direction vector. The
// direction is not required to be normalized; primitives intersect in their
// own object space where the transformed direction carries the scale.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new Ray.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with origin and direction mapped through m.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}
