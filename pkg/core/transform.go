package core

import "math"

// Transform builds a composite transformation matrix. Each call left-multiplies
// the new operation onto the accumulated matrix, so operations written in
// source order are applied to points in that same order:
//
//	m := NewTransform().RotateX(math.Pi/2).Scale(5, 5, 5).Translate(10, 5, 7).Build()
//
// rotates first, then scales, then translates.
type Transform struct {
	m Matrix
}

// NewTransform starts a chain at the identity matrix.
func NewTransform() *Transform {
	return &Transform{m: Identity}
}

// Translate appends a translation by (x, y, z).
func (t *Transform) Translate(x, y, z float64) *Transform {
	return t.apply([4][4]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scale appends a scaling by (x, y, z).
func (t *Transform) Scale(x, y, z float64) *Transform {
	return t.apply([4][4]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// RotateX appends a rotation of r radians around the x axis.
func (t *Transform) RotateX(r float64) *Transform {
	c, s := math.Cos(r), math.Sin(r)
	return t.apply([4][4]float64{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	})
}

// RotateY appends a rotation of r radians around the y axis.
func (t *Transform) RotateY(r float64) *Transform {
	c, s := math.Cos(r), math.Sin(r)
	return t.apply([4][4]float64{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

// RotateZ appends a rotation of r radians around the z axis.
func (t *Transform) RotateZ(r float64) *Transform {
	c, s := math.Cos(r), math.Sin(r)
	return t.apply([4][4]float64{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shear appends a shearing transform where each component is displaced in
// proportion to the other two.
func (t *Transform) Shear(xy, xz, yx, yz, zx, zy float64) *Transform {
	return t.apply([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// Build returns the accumulated matrix.
func (t *Transform) Build() Matrix {
	return t.m
}

func (t *Transform) apply(data [4][4]float64) *Transform {
	t.m = NewMatrix(data).Mul(t.m)
	return t
}

// ViewTransform builds the world-to-camera matrix for an eye at from, looking
// at to, with the given up hint. up need not be normalized or exactly
// perpendicular to the view direction.
func ViewTransform(from, to Point, up Vector) Matrix {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Mul(NewTransform().Translate(-from.X, -from.Y, -from.Z).Build())
}
