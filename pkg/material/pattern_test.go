package material

import (
	"testing"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// scaledObject stands in for a shape scaled by 2 in every axis.
type scaledObject struct{}

func (scaledObject) Transform() core.Matrix {
	return core.NewTransform().Scale(2, 2, 2).Build()
}

func TestStripePattern(t *testing.T) {
	p := NewStripePattern(core.White, core.Black)

	t.Run("constant in y", func(t *testing.T) {
		for _, y := range []float64{0, 1, 2} {
			if got := p.PatternAt(core.NewPoint(0, y, 0)); !got.Equal(core.White) {
				t.Errorf("at y=%v: got %v, want white", y, got)
			}
		}
	})

	t.Run("constant in z", func(t *testing.T) {
		for _, z := range []float64{0, 1, 2} {
			if got := p.PatternAt(core.NewPoint(0, 0, z)); !got.Equal(core.White) {
				t.Errorf("at z=%v: got %v, want white", z, got)
			}
		}
	})

	t.Run("alternates in x", func(t *testing.T) {
		tests := []struct {
			x    float64
			want core.Color
		}{
			{0, core.White},
			{0.9, core.White},
			{1, core.Black},
			{-0.1, core.Black},
			{-1, core.Black},
			{-1.1, core.White},
		}
		for _, tc := range tests {
			if got := p.PatternAt(core.NewPoint(tc.x, 0, 0)); !got.Equal(tc.want) {
				t.Errorf("at x=%v: got %v, want %v", tc.x, got, tc.want)
			}
		}
	})
}

func TestGradientPattern(t *testing.T) {
	p := NewGradientPattern(core.White, core.Black)

	tests := []struct {
		x    float64
		want core.Color
	}{
		{0, core.White},
		{0.25, core.NewColor(0.75, 0.75, 0.75)},
		{0.5, core.NewColor(0.5, 0.5, 0.5)},
		{0.75, core.NewColor(0.25, 0.25, 0.25)},
	}
	for _, tc := range tests {
		if got := p.PatternAt(core.NewPoint(tc.x, 0, 0)); !got.Equal(tc.want) {
			t.Errorf("at x=%v: got %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestRingPattern(t *testing.T) {
	p := NewRingPattern(core.White, core.Black)

	tests := []struct {
		point core.Point
		want  core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(1, 0, 0), core.Black},
		{core.NewPoint(0, 0, 1), core.Black},
		{core.NewPoint(0.708, 0, 0.708), core.Black},
	}
	for _, tc := range tests {
		if got := p.PatternAt(tc.point); !got.Equal(tc.want) {
			t.Errorf("at %v: got %v, want %v", tc.point, got, tc.want)
		}
	}
}

func TestCheckersPattern(t *testing.T) {
	p := NewCheckersPattern(core.White, core.Black)

	tests := []struct {
		name  string
		point core.Point
		want  core.Color
	}{
		{"repeats in x at 0", core.NewPoint(0, 0, 0), core.White},
		{"repeats in x at 0.99", core.NewPoint(0.99, 0, 0), core.White},
		{"flips in x at 1.01", core.NewPoint(1.01, 0, 0), core.Black},
		{"repeats in y at 0.99", core.NewPoint(0, 0.99, 0), core.White},
		{"flips in y at 1.01", core.NewPoint(0, 1.01, 0), core.Black},
		{"repeats in z at 0.99", core.NewPoint(0, 0, 0.99), core.White},
		{"flips in z at 1.01", core.NewPoint(0, 0, 1.01), core.Black},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.PatternAt(tc.point); !got.Equal(tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPatternAtShape(t *testing.T) {
	t.Run("with an object transformation", func(t *testing.T) {
		p := NewStripePattern(core.White, core.Black)
		got := PatternAtShape(p, scaledObject{}, core.NewPoint(1.5, 0, 0))
		if !got.Equal(core.White) {
			t.Errorf("got %v, want white", got)
		}
	})

	t.Run("with a pattern transformation", func(t *testing.T) {
		p := NewStripePattern(core.White, core.Black)
		p.SetTransform(core.NewTransform().Scale(2, 2, 2).Build())
		got := PatternAtShape(p, identityObject{}, core.NewPoint(1.5, 0, 0))
		if !got.Equal(core.White) {
			t.Errorf("got %v, want white", got)
		}
	})

	t.Run("with both transformations", func(t *testing.T) {
		p := NewStripePattern(core.White, core.Black)
		p.SetTransform(core.NewTransform().Translate(0.5, 0, 0).Build())
		got := PatternAtShape(p, scaledObject{}, core.NewPoint(2.5, 0, 0))
		if !got.Equal(core.White) {
			t.Errorf("got %v, want white", got)
		}
	})
}
