package core

// Color represents an RGB color with unbounded float components. Components
// outside [0,1] are legal during shading and are only clamped at image
// serialization time.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub returns the component-wise difference of two colors.
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the Hadamard (component-wise) product of two colors.
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal reports whether two colors are equal within Epsilon.
func (c Color) Equal(other Color) bool {
	return FloatEqual(c.R, other.R) && FloatEqual(c.G, other.G) && FloatEqual(c.B, other.B)
}
