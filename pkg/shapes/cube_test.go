package shapes

import (
	"testing"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

func TestCubeIntersect(t *testing.T) {
	c := NewCube()

	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vector
		t1, t2    float64
	}{
		{"+x face", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), 4, 6},
		{"-x face", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), 4, 6},
		{"+y face", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), 4, 6},
		{"-y face", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), 4, 6},
		{"+z face", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), 4, 6},
		{"-z face", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"from inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), -1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			xs := c.LocalIntersect(core.NewRay(tc.origin, tc.direction))
			if len(xs) != 2 {
				t.Fatalf("got %d intersections, want 2", len(xs))
			}
			if !core.FloatEqual(xs[0].T, tc.t1) || !core.FloatEqual(xs[1].T, tc.t2) {
				t.Errorf("ts = %v, %v, want %v, %v", xs[0].T, xs[1].T, tc.t1, tc.t2)
			}
		})
	}
}

func TestCubeMiss(t *testing.T) {
	c := NewCube()

	tests := []struct {
		origin    core.Point
		direction core.Vector
	}{
		{core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018)},
		{core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345)},
		{core.NewPoint(0, 0, -2), core.NewVector(0.5345, 0.8018, 0.2673)},
		{core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1)},
		{core.NewPoint(0, 2, 2), core.NewVector(0, -1, 0)},
		{core.NewPoint(2, 2, 0), core.NewVector(-1, 0, 0)},
	}
	for _, tc := range tests {
		if xs := c.LocalIntersect(core.NewRay(tc.origin, tc.direction)); len(xs) != 0 {
			t.Errorf("ray from %v toward %v: got %v, want no intersections", tc.origin, tc.direction, xs)
		}
	}
}

func TestCubeNormal(t *testing.T) {
	c := NewCube()

	tests := []struct {
		point core.Point
		want  core.Vector
	}{
		{core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}
	for _, tc := range tests {
		if got := c.LocalNormalAt(tc.point, Intersection{}); !got.Equal(tc.want) {
			t.Errorf("at %v: got %v, want %v", tc.point, got, tc.want)
		}
	}
}
