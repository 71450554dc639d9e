// Package world holds the scene container and the recursive shading
// pipeline: shadows, reflection, refraction, and the Fresnel blend between
// them.
package world

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
	"github.com/user/go-whitted-raytracer/pkg/lights"
	"github.com/user/go-whitted-raytracer/pkg/material"
	"github.com/user/go-whitted-raytracer/pkg/shapes"
)

// DefaultRecursionDepth is the depth budget renderers pass to ColorAt unless
// configured otherwise. Each reflection or refraction bounce consumes one
// unit.
const DefaultRecursionDepth = 5

// World is the scene: a light source and the top-level shapes. It implements
// shapes.Locator so parent walks can resolve shape IDs anywhere in the scene
// graph. The world is treated as read-only while rendering.
type World struct {
	Light   *lights.PointLight
	objects []shapes.Shape
}

// NewWorld creates an empty world with no light.
func NewWorld() *World {
	return &World{}
}

// NewDefaultWorld creates the canonical two-sphere scene: a white light above
// and to the left, an outer green-tinted sphere, and an inner half-size
// sphere.
func NewDefaultWorld() *World {
	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	s1 := shapes.NewSphere()
	m1 := material.NewMaterial()
	m1.Color = core.NewColor(0.8, 1.0, 0.6)
	m1.Diffuse = 0.7
	m1.Specular = 0.2
	s1.SetMaterial(m1)

	s2 := shapes.NewSphere()
	s2.SetTransform(core.NewTransform().Scale(0.5, 0.5, 0.5).Build())

	w := NewWorld()
	w.Light = &light
	w.AddObject(s1)
	w.AddObject(s2)
	return w
}

// AddObject appends a top-level shape to the scene.
func (w *World) AddObject(s shapes.Shape) {
	w.objects = append(w.objects, s)
}

// Objects returns the top-level shapes.
func (w *World) Objects() []shapes.Shape {
	return w.objects
}

// ObjectByID resolves a shape ID anywhere in the scene graph, searching
// top-level shapes and their subtrees.
func (w *World) ObjectByID(id uint64) (shapes.Shape, bool) {
	for _, o := range w.objects {
		if o.ID() == id {
			return o, true
		}
		if found, ok := o.ChildByID(id); ok {
			return found, true
		}
	}
	return nil, false
}

// Intersect gathers the intersections of the ray with every shape in the
// world, sorted by t.
func (w *World) Intersect(ray core.Ray) []shapes.Intersection {
	var xs []shapes.Intersection
	for _, o := range w.objects {
		xs = append(xs, shapes.Intersect(o, ray)...)
	}
	shapes.SortIntersections(xs)
	return xs
}

// ColorAt traces a ray into the world and returns its color. Rays that hit
// nothing are black. remaining is the recursion budget for secondary rays.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := shapes.Hit(xs)
	if !ok {
		return core.Black
	}
	comps := shapes.PrepareComputations(w, hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a prepared intersection: the Phong surface
// term plus the reflected and refracted contributions. When the material is
// both reflective and transparent, the two are blended by the Schlick
// reflectance.
func (w *World) ShadeHit(comps shapes.Computations, remaining int) core.Color {
	if w.Light == nil {
		panic("world has no light source")
	}

	m := shapes.ResolveMaterial(w, comps.Object)
	shadowed := w.IsShadowed(comps.OverPoint)

	surface := m.Lighting(comps.Object, *w.Light, comps.OverPoint, comps.Eyev, comps.Normalv, shadowed)
	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := shapes.Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether the point is cut off from the light by any
// shape between them.
func (w *World) IsShadowed(point core.Point) bool {
	if w.Light == nil {
		panic("world has no light source")
	}

	v := w.Light.Position.Sub(point)
	distance := v.Magnitude()
	direction := v.Normalize()

	r := core.NewRay(point, direction)
	hit, ok := shapes.Hit(w.Intersect(r))
	return ok && hit.T < distance
}

// ReflectedColor traces the reflection bounce off a reflective surface,
// scaled by the material's reflectivity. A spent recursion budget or a
// non-reflective material contributes black, which is what terminates rays
// bouncing between parallel mirrors.
func (w *World) ReflectedColor(comps shapes.Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	m := shapes.ResolveMaterial(w, comps.Object)
	if m.Reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflectv)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Multiply(m.Reflective)
}

// RefractedColor traces the ray transmitted through a transparent surface,
// bending it per Snell's law. Total internal reflection contributes black;
// the reflected branch carries that light instead.
func (w *World) RefractedColor(comps shapes.Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	m := shapes.ResolveMaterial(w, comps.Object)
	if m.Transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eyev.Dot(comps.Normalv)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.Normalv.Multiply(nRatio*cosI - cosT).
		Sub(comps.Eyev.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(m.Transparency)
}
