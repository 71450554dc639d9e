package shapes

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the object-space origin.
type Plane struct {
	baseShape
}

// NewPlane creates an xz plane with the identity transform.
func NewPlane() *Plane {
	return &Plane{baseShape: newBaseShape()}
}

// LocalIntersect returns the single crossing of the plane, or nothing when
// the ray is parallel to it (including rays lying in the plane).
func (p *Plane) LocalIntersect(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormalAt is constant everywhere on the plane.
func (p *Plane) LocalNormalAt(_ core.Point, _ Intersection) core.Vector {
	return core.NewVector(0, 1, 0)
}
