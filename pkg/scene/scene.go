// Package scene provides the canned demo scenes the CLI can render, each
// exercising a different part of the tracer.
package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/user/go-whitted-raytracer/pkg/core"
	"github.com/user/go-whitted-raytracer/pkg/lights"
	"github.com/user/go-whitted-raytracer/pkg/loaders"
	"github.com/user/go-whitted-raytracer/pkg/material"
	"github.com/user/go-whitted-raytracer/pkg/renderer"
	"github.com/user/go-whitted-raytracer/pkg/shapes"
	"github.com/user/go-whitted-raytracer/pkg/world"
)

// Builder assembles a world and a camera sized for the requested canvas.
type Builder func(width, height int) (*world.World, *renderer.Camera)

var registry = map[string]Builder{
	"spheres": Spheres,
	"csg":     CSGDemo,
	"hexagon": Hexagon,
}

// Names lists the registered scenes in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up a registered scene by name.
func Build(name string, width, height int) (*world.World, *renderer.Camera, error) {
	b, ok := registry[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown scene %q (have %v)", name, Names())
	}
	w, c := b(width, height)
	return w, c, nil
}

// Spheres is the classic showcase: three spheres over a checkered reflective
// floor, one striped, one glass.
func Spheres(width, height int) (*world.World, *renderer.Camera) {
	w := world.NewWorld()
	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	w.Light = &light

	floor := shapes.NewPlane()
	mf := material.NewMaterial()
	checkers := material.NewCheckersPattern(core.NewColor(0.7, 0.7, 0.7), core.NewColor(0.3, 0.3, 0.3))
	mf.Pattern = checkers
	mf.Specular = 0
	mf.Reflective = 0.3
	floor.SetMaterial(mf)
	w.AddObject(floor)

	middle := shapes.NewSphere()
	middle.SetTransform(core.NewTransform().Translate(-0.5, 1, 0.5).Build())
	mm := material.NewMaterial()
	stripes := material.NewStripePattern(core.NewColor(0.1, 1, 0.5), core.NewColor(0.05, 0.5, 0.25))
	stripes.SetTransform(core.NewTransform().Scale(0.25, 0.25, 0.25).RotateZ(math.Pi / 4).Build())
	mm.Pattern = stripes
	mm.Diffuse = 0.7
	mm.Specular = 0.3
	middle.SetMaterial(mm)
	w.AddObject(middle)

	right := shapes.NewGlassSphere()
	right.SetTransform(core.NewTransform().Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5).Build())
	mr := right.Material()
	mr.Color = core.NewColor(0.1, 0.1, 0.1)
	mr.Diffuse = 0.1
	mr.Specular = 1
	mr.Shininess = 300
	mr.Reflective = 0.9
	right.SetMaterial(mr)
	w.AddObject(right)

	left := shapes.NewSphere()
	left.SetTransform(core.NewTransform().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75).Build())
	ml := material.NewMaterial()
	ml.Pattern = material.NewGradientPattern(core.NewColor(1, 0.8, 0.1), core.NewColor(1, 0.2, 0.1))
	ml.Diffuse = 0.7
	ml.Specular = 0.3
	left.SetMaterial(ml)
	w.AddObject(left)

	c := renderer.NewCamera(width, height, math.Pi/3)
	c.Transform = core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	return w, c
}

// CSGDemo carves a lens from two overlapping spheres and punches a cylinder
// through a rounded cube.
func CSGDemo(width, height int) (*world.World, *renderer.Camera) {
	w := world.NewWorld()
	light := lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White)
	w.Light = &light

	floor := shapes.NewPlane()
	mf := material.NewMaterial()
	mf.Pattern = material.NewRingPattern(core.NewColor(0.8, 0.8, 0.85), core.NewColor(0.4, 0.4, 0.45))
	mf.Specular = 0
	floor.SetMaterial(mf)
	w.AddObject(floor)

	cube := shapes.NewCube()
	mc := material.NewMaterial()
	mc.Color = core.NewColor(0.9, 0.2, 0.2)
	cube.SetMaterial(mc)

	bore := shapes.NewCylinder()
	bore.Minimum = -2
	bore.Maximum = 2
	bore.Closed = true
	bore.SetTransform(core.NewTransform().Scale(0.6, 1, 0.6).Build())
	mb := material.NewMaterial()
	mb.Color = core.NewColor(0.2, 0.2, 0.9)
	bore.SetMaterial(mb)

	pierced := shapes.NewCSG(shapes.OpDifference, cube, bore)
	pierced.SetTransform(core.NewTransform().RotateY(math.Pi / 6).Translate(-1.6, 1, 0.5).Build())
	w.AddObject(pierced)

	s1 := shapes.NewSphere()
	s1.SetTransform(core.NewTransform().Translate(-0.4, 0, 0).Build())
	s2 := shapes.NewSphere()
	s2.SetTransform(core.NewTransform().Translate(0.4, 0, 0).Build())
	mg := material.NewMaterial()
	mg.Color = core.NewColor(0.2, 0.8, 0.4)
	mg.Reflective = 0.2
	s1.SetMaterial(mg)
	s2.SetMaterial(mg)

	lens := shapes.NewCSG(shapes.OpIntersection, s1, s2)
	lens.SetTransform(core.NewTransform().Translate(1.4, 1, -0.5).Build())
	w.AddObject(lens)

	c := renderer.NewCamera(width, height, math.Pi/3)
	c.Transform = core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	return w, c
}

// Hexagon builds a ring of six sphere-and-cylinder sides under a single
// group transform, the standard stress test for nested group math.
func Hexagon(width, height int) (*world.World, *renderer.Camera) {
	w := world.NewWorld()
	light := lights.NewPointLight(core.NewPoint(-5, 8, -8), core.White)
	w.Light = &light

	hex := hexagonRing()
	hex.SetTransform(core.NewTransform().RotateX(-math.Pi / 6).Translate(0, 1, 0).Build())
	m := material.NewMaterial()
	m.Color = core.NewColor(0.9, 0.7, 0.2)
	m.Reflective = 0.1
	hex.SetMaterial(m)
	w.AddObject(hex)

	c := renderer.NewCamera(width, height, math.Pi/3)
	c.Transform = core.ViewTransform(
		core.NewPoint(0, 2, -4),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	return w, c
}

func hexagonRing() *shapes.Group {
	hex := shapes.NewGroup()
	for n := 0; n < 6; n++ {
		side := hexagonSide()
		side.SetTransform(core.NewTransform().RotateY(float64(n) * math.Pi / 3).Build())
		hex.AddChild(side)
	}
	return hex
}

func hexagonSide() *shapes.Group {
	side := shapes.NewGroup()
	side.SetInheritsMaterial(true)
	side.AddChild(hexagonCorner())
	side.AddChild(hexagonEdge())
	return side
}

func hexagonCorner() *shapes.Sphere {
	corner := shapes.NewSphere()
	corner.SetInheritsMaterial(true)
	corner.SetTransform(core.NewTransform().Scale(0.25, 0.25, 0.25).Translate(0, 0, -1).Build())
	return corner
}

func hexagonEdge() *shapes.Cylinder {
	edge := shapes.NewCylinder()
	edge.SetInheritsMaterial(true)
	edge.Minimum = 0
	edge.Maximum = 1
	edge.SetTransform(core.NewTransform().
		Scale(0.25, 1, 0.25).
		RotateZ(-math.Pi / 2).
		RotateY(-math.Pi / 6).
		Translate(0, 0, -1).
		Build())
	return edge
}

// OBJ loads a Wavefront OBJ model and centers it in a simple lit room.
func OBJ(path string, width, height int) (*world.World, *renderer.Camera, error) {
	parser, err := loaders.ParseOBJFile(path)
	if err != nil {
		return nil, nil, err
	}

	w := world.NewWorld()
	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	w.Light = &light

	floor := shapes.NewPlane()
	mf := material.NewMaterial()
	mf.Pattern = material.NewCheckersPattern(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.4, 0.4, 0.4))
	mf.Specular = 0
	floor.SetMaterial(mf)
	w.AddObject(floor)

	model := parser.ToGroup()
	mm := material.NewMaterial()
	mm.Color = core.NewColor(0.6, 0.6, 0.9)
	model.SetMaterial(mm)
	model.SetTransform(core.NewTransform().Translate(0, 1, 0).Build())
	w.AddObject(model)

	c := renderer.NewCamera(width, height, math.Pi/3)
	c.Transform = core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	return w, c, nil
}
