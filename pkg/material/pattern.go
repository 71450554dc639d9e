package material

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// Pattern is a procedural texture evaluated in its own pattern space.
// Implementations answer PatternAt for points already mapped into that space;
// PatternAtShape performs the world-to-object-to-pattern mapping.
type Pattern interface {
	PatternAt(point core.Point) core.Color
	Transform() core.Matrix
}

// PatternAtShape evaluates a pattern at a world-space point on a shape. The
// point passes through the shape's inverse transform and then the pattern's
// inverse transform before the pattern function sees it.
func PatternAtShape(p Pattern, object Transformer, worldPoint core.Point) core.Color {
	objectPoint := object.Transform().Inverse().MulPoint(worldPoint)
	patternPoint := p.Transform().Inverse().MulPoint(objectPoint)
	return p.PatternAt(patternPoint)
}

// StripePattern alternates two colors in unit-wide bands along the x axis.
type StripePattern struct {
	A, B      core.Color
	transform core.Matrix
}

// NewStripePattern creates a stripe pattern with the identity transform.
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{A: a, B: b, transform: core.Identity}
}

// Transform returns the pattern's transform.
func (p *StripePattern) Transform() core.Matrix { return p.transform }

// SetTransform replaces the pattern's transform.
func (p *StripePattern) SetTransform(m core.Matrix) { p.transform = m }

// PatternAt returns A where floor(x) is even and B where it is odd.
func (p *StripePattern) PatternAt(point core.Point) core.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A at x=0 to B at x=1.
type GradientPattern struct {
	A, B      core.Color
	transform core.Matrix
}

// NewGradientPattern creates a gradient pattern with the identity transform.
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{A: a, B: b, transform: core.Identity}
}

// Transform returns the pattern's transform.
func (p *GradientPattern) Transform() core.Matrix { return p.transform }

// SetTransform replaces the pattern's transform.
func (p *GradientPattern) SetTransform(m core.Matrix) { p.transform = m }

// PatternAt interpolates between A and B by the fractional distance along x.
func (p *GradientPattern) PatternAt(point core.Point) core.Color {
	distance := p.B.Sub(p.A)
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates two colors in concentric rings around the y axis,
// keyed on radial distance in the xz plane.
type RingPattern struct {
	A, B      core.Color
	transform core.Matrix
}

// NewRingPattern creates a ring pattern with the identity transform.
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{A: a, B: b, transform: core.Identity}
}

// Transform returns the pattern's transform.
func (p *RingPattern) Transform() core.Matrix { return p.transform }

// SetTransform replaces the pattern's transform.
func (p *RingPattern) SetTransform(m core.Matrix) { p.transform = m }

// PatternAt returns A where floor(sqrt(x²+z²)) is even and B otherwise.
func (p *RingPattern) PatternAt(point core.Point) core.Color {
	r := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(math.Floor(r))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckersPattern tiles space into unit cubes colored by the parity of
// floor(x)+floor(y)+floor(z).
type CheckersPattern struct {
	A, B      core.Color
	transform core.Matrix
}

// NewCheckersPattern creates a checkers pattern with the identity transform.
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{A: a, B: b, transform: core.Identity}
}

// Transform returns the pattern's transform.
func (p *CheckersPattern) Transform() core.Matrix { return p.transform }

// SetTransform replaces the pattern's transform.
func (p *CheckersPattern) SetTransform(m core.Matrix) { p.transform = m }

// PatternAt returns A where the sum of the floored coordinates is even.
func (p *CheckersPattern) PatternAt(point core.Point) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}
