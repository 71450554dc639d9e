package shapes

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis in object
// space.
type Cube struct {
	baseShape
}

// NewCube creates a unit cube with the identity transform.
func NewCube() *Cube {
	return &Cube{baseShape: newBaseShape()}
}

// LocalIntersect runs the slab test: the entry point is the largest per-axis
// minimum and the exit the smallest per-axis maximum. The ray misses when
// entry exceeds exit.
func (c *Cube) LocalIntersect(ray core.Ray) []Intersection {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}
	return []Intersection{
		NewIntersection(tmin, c),
		NewIntersection(tmax, c),
	}
}

// checkAxis computes where the ray crosses the two planes of one slab.
// Division by a zero direction component yields infinities with the correct
// signs, which the min/max folding handles without a special case.
func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tmin = (-1 - origin) / direction
	tmax = (1 - origin) / direction
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalNormalAt picks the axis with the largest absolute coordinate; on a
// face that is the face's axis, and on edges and corners ties break in x, y,
// z order.
func (c *Cube) LocalNormalAt(point core.Point, _ Intersection) core.Vector {
	maxc := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxc {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}
