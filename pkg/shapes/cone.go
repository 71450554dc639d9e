package shapes

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone around the object-space y axis, with its apex
// at the origin and radius equal to |y|. Minimum and Maximum truncate it;
// Closed adds end caps.
type Cone struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone.
func NewCone() *Cone {
	return &Cone{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect intersects the cone surface. A vanishing quadratic
// coefficient means the ray parallels one half of the cone; it still crosses
// the other half once unless the linear coefficient vanishes too.
func (cone *Cone) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	d, o := ray.Direction, ray.Origin
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Parallel to both halves, no wall hit.
	case math.Abs(a) < core.Epsilon:
		xs = append(xs, NewIntersection(-c/(2*b), cone))
	default:
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
			y := o.Y + t*d.Y
			if cone.Minimum < y && y < cone.Maximum {
				xs = append(xs, NewIntersection(t, cone))
			}
		}
	}

	return cone.intersectCaps(ray, xs)
}

// intersectCaps appends cap hits. Unlike the cylinder, each cap's radius is
// the absolute value of its bounding plane's y.
func (cone *Cone) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !cone.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (cone.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkConeCap(ray, t, cone.Minimum) {
		xs = append(xs, NewIntersection(t, cone))
	}

	t = (cone.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkConeCap(ray, t, cone.Maximum) {
		xs = append(xs, NewIntersection(t, cone))
	}
	return xs
}

func checkConeCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// LocalNormalAt distinguishes the caps from the wall; on the wall the y
// component is the radial distance, negated above the apex.
func (cone *Cone) LocalNormalAt(point core.Point, _ Intersection) core.Vector {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < cone.Maximum*cone.Maximum && point.Y >= cone.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < cone.Minimum*cone.Minimum && point.Y <= cone.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return core.NewVector(point.X, y, point.Z)
	}
}
