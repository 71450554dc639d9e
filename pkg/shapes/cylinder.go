package shapes

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the object-space y axis. Minimum and
// Maximum truncate it with exclusive bounds; Closed adds end caps.
type Cylinder struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder.
func NewCylinder() *Cylinder {
	return &Cylinder{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect intersects the cylinder wall, keeping only crossings whose y
// lies strictly between the bounds, then adds cap hits when the cylinder is
// closed.
func (cyl *Cylinder) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}

		sqrtDisc := math.Sqrt(disc)
		t0 := (-b - sqrtDisc) / (2 * a)
		t1 := (-b + sqrtDisc) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range []float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if cyl.Minimum < y && y < cyl.Maximum {
				xs = append(xs, NewIntersection(t, cyl))
			}
		}
	}

	return cyl.intersectCaps(ray, xs)
}

// intersectCaps appends hits against the end caps when the cylinder is closed
// and the ray is not parallel to them.
func (cyl *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !cyl.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (cyl.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCylinderCap(ray, t) {
		xs = append(xs, NewIntersection(t, cyl))
	}

	t = (cyl.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCylinderCap(ray, t) {
		xs = append(xs, NewIntersection(t, cyl))
	}
	return xs
}

// checkCylinderCap reports whether the crossing at t lands within the unit
// radius of a cap.
func checkCylinderCap(ray core.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

// LocalNormalAt distinguishes the caps from the wall by the point's radial
// distance and its closeness to the bounds.
func (cyl *Cylinder) LocalNormalAt(point core.Point, _ Intersection) core.Vector {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= cyl.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= cyl.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(point.X, 0, point.Z)
	}
}
