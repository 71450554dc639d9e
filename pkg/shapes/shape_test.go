package shapes

import (
	"math"
	"testing"

	"github.com/user/go-whitted-raytracer/pkg/core"
	"github.com/user/go-whitted-raytracer/pkg/material"
)

func TestShapeDefaults(t *testing.T) {
	s := NewTestShape()

	if !s.Transform().Equal(core.Identity) {
		t.Errorf("default transform = %v, want identity", s.Transform())
	}
	if got := s.Material(); got != material.NewMaterial() {
		t.Errorf("default material = %v, want the standard default", got)
	}
	if _, ok := s.Parent(); ok {
		t.Error("new shape must have no parent")
	}
}

func TestShapeAssignments(t *testing.T) {
	s := NewTestShape()

	tr := core.NewTransform().Translate(2, 3, 4).Build()
	s.SetTransform(tr)
	if !s.Transform().Equal(tr) {
		t.Errorf("transform = %v, want %v", s.Transform(), tr)
	}

	m := material.NewMaterial()
	m.Ambient = 1
	s.SetMaterial(m)
	if s.Material().Ambient != 1 {
		t.Errorf("material ambient = %v, want 1", s.Material().Ambient)
	}
}

func TestShapeIDsAreUnique(t *testing.T) {
	a := NewSphere()
	b := NewSphere()
	if a.ID() == b.ID() {
		t.Errorf("two shapes share ID %d", a.ID())
	}
}

func TestIntersectTransformsTheRay(t *testing.T) {
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	t.Run("scaled shape", func(t *testing.T) {
		s := NewTestShape()
		s.SetTransform(core.NewTransform().Scale(2, 2, 2).Build())
		xs := Intersect(s, r)
		// Local ray is origin (0, 0, -2.5), direction (0, 0, 0.5).
		if len(xs) != 1 || !core.FloatEqual(xs[0].T, -2) {
			t.Errorf("xs = %v, want one intersection with t=-2", xs)
		}
	})

	t.Run("translated shape", func(t *testing.T) {
		s := NewTestShape()
		s.SetTransform(core.NewTransform().Translate(5, 0, 0).Build())
		xs := Intersect(s, r)
		// Local ray is origin (-5, 0, -5), direction (0, 0, 1).
		if len(xs) != 1 || !core.FloatEqual(xs[0].T, -9) {
			t.Errorf("xs = %v, want one intersection with t=-9", xs)
		}
	})
}

func TestNormalAtTransformedShape(t *testing.T) {
	t.Run("translated shape", func(t *testing.T) {
		s := NewTestShape()
		s.SetTransform(core.NewTransform().Translate(0, 1, 0).Build())
		got := NormalAt(nil, s, core.NewPoint(0, 1.70711, -0.70711), Intersection{})
		if !got.Equal(core.NewVector(0, 0.70711, -0.70711)) {
			t.Errorf("got %v, want (0, 0.70711, -0.70711)", got)
		}
	})

	t.Run("scaled and rotated shape", func(t *testing.T) {
		s := NewTestShape()
		s.SetTransform(core.NewTransform().RotateZ(math.Pi / 5).Scale(1, 0.5, 1).Build())
		s2 := math.Sqrt2 / 2
		got := NormalAt(nil, s, core.NewPoint(0, s2, -s2), Intersection{})
		if !got.Equal(core.NewVector(0, 0.97014, -0.24254)) {
			t.Errorf("got %v, want (0, 0.97014, -0.24254)", got)
		}
	})
}

// nestedSphere builds g1 > g2 > sphere with the given transforms and returns
// the outer group, which serves as the Locator for the walks.
func nestedSphere(t *testing.T, g1t, g2t, st core.Matrix) (*Group, *Sphere) {
	t.Helper()
	g1 := NewGroup()
	g1.SetTransform(g1t)
	g2 := NewGroup()
	g2.SetTransform(g2t)
	g1.AddChild(g2)
	s := NewSphere()
	s.SetTransform(st)
	g2.AddChild(s)
	return g1, s
}

func TestWorldToObjectNested(t *testing.T) {
	g1, s := nestedSphere(t,
		core.NewTransform().RotateY(math.Pi/2).Build(),
		core.NewTransform().Scale(2, 2, 2).Build(),
		core.NewTransform().Translate(5, 0, 0).Build(),
	)
	got := WorldToObject(g1, s, core.NewPoint(-2, 0, -10))
	if !got.Equal(core.NewPoint(0, 0, -1)) {
		t.Errorf("got %v, want (0, 0, -1)", got)
	}
}

func TestNormalToWorldNested(t *testing.T) {
	g1, s := nestedSphere(t,
		core.NewTransform().RotateY(math.Pi/2).Build(),
		core.NewTransform().Scale(1, 2, 3).Build(),
		core.NewTransform().Translate(5, 0, 0).Build(),
	)
	v := math.Sqrt(3) / 3
	got := NormalToWorld(g1, s, core.NewVector(v, v, v))
	if !got.Equal(core.NewVector(0.2857, 0.4286, -0.8571)) {
		t.Errorf("got %v, want (0.2857, 0.4286, -0.8571)", got)
	}
}

func TestNormalAtNestedChild(t *testing.T) {
	g1, s := nestedSphere(t,
		core.NewTransform().RotateY(math.Pi/2).Build(),
		core.NewTransform().Scale(1, 2, 3).Build(),
		core.NewTransform().Translate(5, 0, 0).Build(),
	)
	got := NormalAt(g1, s, core.NewPoint(1.7321, 1.1547, -5.5774), Intersection{})
	if !got.Equal(core.NewVector(0.2857, 0.4286, -0.8571)) {
		t.Errorf("got %v, want (0.2857, 0.4286, -0.8571)", got)
	}
}

func TestBrokenHierarchyPanics(t *testing.T) {
	// A shape whose parent the locator cannot resolve is a broken scene
	// graph; the walks must abort rather than return wrong geometry.
	mustPanic := func(t *testing.T, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Error("expected a panic")
			}
		}()
		f()
	}

	orphan := func() *Sphere {
		s := NewSphere()
		s.SetParent(999999)
		return s
	}
	empty := NewGroup()

	t.Run("world to object", func(t *testing.T) {
		mustPanic(t, func() { WorldToObject(empty, orphan(), core.NewPoint(0, 0, 0)) })
	})

	t.Run("normal to world", func(t *testing.T) {
		mustPanic(t, func() { NormalToWorld(empty, orphan(), core.NewVector(0, 1, 0)) })
	})

	t.Run("material resolution", func(t *testing.T) {
		s := orphan()
		s.SetInheritsMaterial(true)
		mustPanic(t, func() { ResolveMaterial(empty, s) })
	})

	t.Run("nil locator with a parent", func(t *testing.T) {
		mustPanic(t, func() { WorldToObject(nil, orphan(), core.NewPoint(0, 0, 0)) })
	})
}

func TestResolveMaterial(t *testing.T) {
	g := NewGroup()
	m := material.NewMaterial()
	m.Color = core.NewColor(1, 0, 0)
	g.SetMaterial(m)

	s := NewSphere()
	g.AddChild(s)

	t.Run("own material by default", func(t *testing.T) {
		if got := ResolveMaterial(g, s); !got.Color.Equal(core.White) {
			t.Errorf("got %v, want the sphere's own white", got.Color)
		}
	})

	t.Run("inherits from parent when set", func(t *testing.T) {
		s.SetInheritsMaterial(true)
		if got := ResolveMaterial(g, s); !got.Color.Equal(core.NewColor(1, 0, 0)) {
			t.Errorf("got %v, want the group's red", got.Color)
		}
	})
}
