package shapes

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// Sphere is a unit sphere centered at the object-space origin. Any other
// sphere is expressed through the transform.
type Sphere struct {
	baseShape
}

// NewSphere creates a unit sphere with the identity transform and the default
// material.
func NewSphere() *Sphere {
	return &Sphere{baseShape: newBaseShape()}
}

// NewGlassSphere creates a fully transparent sphere with the refractive index
// of glass.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := s.Material()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	return s
}

// LocalIntersect solves the quadratic for the ray against the unit sphere,
// returning both roots even when they are equal or negative.
func (s *Sphere) LocalIntersect(ray core.Ray) []Intersection {
	sphereToRay := ray.Origin.Sub(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	return []Intersection{
		NewIntersection((-b-sqrtDisc)/(2*a), s),
		NewIntersection((-b+sqrtDisc)/(2*a), s),
	}
}

// LocalNormalAt returns the vector from the center to the point; on the unit
// sphere it is already unit length.
func (s *Sphere) LocalNormalAt(point core.Point, _ Intersection) core.Vector {
	return point.Sub(core.NewPoint(0, 0, 0))
}
