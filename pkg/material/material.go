// Package material implements Phong surface materials and the procedural
// patterns that can replace their flat color.
package material

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
	"github.com/user/go-whitted-raytracer/pkg/lights"
)

// Transformer is the part of a shape the shading model needs: the transform
// that maps pattern lookups from world space into the shape's object space.
type Transformer interface {
	Transform() core.Matrix
}

// Material holds the Phong shading parameters of a surface. Reflective,
// Transparency, and RefractiveIndex extend the classic model for the recursive
// secondary rays.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	Pattern         Pattern
}

// NewMaterial returns a material with the standard defaults: matte white,
// opaque, non-reflective.
func NewMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Lighting computes the Phong shade of a surface point: the sum of the
// ambient, diffuse, and specular contributions. When the point is in shadow
// only the ambient term survives. The object is needed so a pattern can be
// evaluated in the object's own space.
func (m Material) Lighting(object Transformer, light lights.PointLight, point core.Point, eyev, normalv core.Vector, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = PatternAtShape(m.Pattern, object, point)
	}

	effective := color.Blend(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface.
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)
	return ambient.Add(diffuse).Add(specular)
}
