// Package lights provides the light sources used by the shading pipeline.
package lights

import "github.com/user/go-whitted-raytracer/pkg/core"

// PointLight is a light source with no size, existing at a single point and
// radiating its intensity equally in all directions.
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a point light at the given position.
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
