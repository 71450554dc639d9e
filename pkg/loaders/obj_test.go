package loaders

import (
	"strings"
	"testing"

	"github.com/user/go-whitted-raytracer/pkg/core"
	"github.com/user/go-whitted-raytracer/pkg/shapes"
)

func parse(t *testing.T, src string) *OBJParser {
	t.Helper()
	p, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	return p
}

func childTriangle(t *testing.T, g *shapes.Group, i int) *shapes.Triangle {
	t.Helper()
	children := g.Children()
	if i >= len(children) {
		t.Fatalf("group has %d children, want at least %d", len(children), i+1)
	}
	tri, ok := children[i].(*shapes.Triangle)
	if !ok {
		t.Fatalf("child %d is %T, want a triangle", i, children[i])
	}
	return tri
}

func TestParseOBJIgnoresGibberish(t *testing.T) {
	p := parse(t, `There was a young lady named Bright
who traveled much faster than light.
She set out one day
in a relative way,
and came back the previous night.
`)

	if p.IgnoredLines != 5 {
		t.Errorf("ignored %d lines, want 5", p.IgnoredLines)
	}
}

func TestParseOBJVertices(t *testing.T) {
	p := parse(t, `v -1 1 0
v -1.0000 0.5000 0.0000
v 1 0 0
v 1 1 0
`)

	want := []core.Point{
		core.NewPoint(-1, 1, 0),
		core.NewPoint(-1, 0.5, 0),
		core.NewPoint(1, 0, 0),
		core.NewPoint(1, 1, 0),
	}
	for i, wp := range want {
		if got := p.Vertex(i + 1); !got.Equal(wp) {
			t.Errorf("vertex %d = %v, want %v", i+1, got, wp)
		}
	}
}

func TestParseOBJTriangleFaces(t *testing.T) {
	p := parse(t, `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0

f 1 2 3
f 1 3 4
`)

	g := p.DefaultGroup()
	t1 := childTriangle(t, g, 0)
	t2 := childTriangle(t, g, 1)

	if !t1.P1.Equal(p.Vertex(1)) || !t1.P2.Equal(p.Vertex(2)) || !t1.P3.Equal(p.Vertex(3)) {
		t.Errorf("t1 vertices = %v %v %v", t1.P1, t1.P2, t1.P3)
	}
	if !t2.P1.Equal(p.Vertex(1)) || !t2.P2.Equal(p.Vertex(3)) || !t2.P3.Equal(p.Vertex(4)) {
		t.Errorf("t2 vertices = %v %v %v", t2.P1, t2.P2, t2.P3)
	}
}

func TestParseOBJTriangulatesPolygons(t *testing.T) {
	p := parse(t, `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0
v 0 2 0

f 1 2 3 4 5
`)

	g := p.DefaultGroup()
	if len(g.Children()) != 3 {
		t.Fatalf("got %d triangles, want 3", len(g.Children()))
	}
	t3 := childTriangle(t, g, 2)
	if !t3.P1.Equal(p.Vertex(1)) || !t3.P2.Equal(p.Vertex(4)) || !t3.P3.Equal(p.Vertex(5)) {
		t.Errorf("t3 vertices = %v %v %v", t3.P1, t3.P2, t3.P3)
	}
}

const twoGroupOBJ = `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0

g FirstGroup
f 1 2 3
g SecondGroup
f 1 3 4
`

func TestParseOBJNamedGroups(t *testing.T) {
	p := parse(t, twoGroupOBJ)

	g1 := p.Group("FirstGroup")
	g2 := p.Group("SecondGroup")
	if g1 == nil || g2 == nil {
		t.Fatal("named groups not created")
	}

	t1 := childTriangle(t, g1, 0)
	if !t1.P1.Equal(p.Vertex(1)) || !t1.P2.Equal(p.Vertex(2)) || !t1.P3.Equal(p.Vertex(3)) {
		t.Errorf("FirstGroup triangle vertices = %v %v %v", t1.P1, t1.P2, t1.P3)
	}
	t2 := childTriangle(t, g2, 0)
	if !t2.P1.Equal(p.Vertex(1)) || !t2.P2.Equal(p.Vertex(3)) || !t2.P3.Equal(p.Vertex(4)) {
		t.Errorf("SecondGroup triangle vertices = %v %v %v", t2.P1, t2.P2, t2.P3)
	}
}

func TestToGroup(t *testing.T) {
	p := parse(t, twoGroupOBJ)
	root := p.ToGroup()

	if len(root.Children()) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children()))
	}
	if !root.Includes(p.Group("FirstGroup")) || !root.Includes(p.Group("SecondGroup")) {
		t.Error("root group must include both named groups")
	}
	for _, child := range root.Children() {
		parentID, ok := child.Parent()
		if !ok || parentID != root.ID() {
			t.Errorf("child parent = %v/%v, want the root group", parentID, ok)
		}
		if !child.InheritsMaterial() {
			t.Error("named groups must defer to the root group's material")
		}
	}
}

func TestToGroupMovesDefaultTriangles(t *testing.T) {
	p := parse(t, `v 0 1 0
v -1 0 0
v 1 0 0
f 1 2 3
g Named
f 1 2 3
`)
	root := p.ToGroup()

	if len(root.Children()) != 2 {
		t.Fatalf("root has %d children, want the moved triangle and the named group", len(root.Children()))
	}
	if len(p.DefaultGroup().Children()) != 0 {
		t.Error("default group must be emptied when its triangles move to the root")
	}
	tri := root.Children()[0]
	parentID, ok := tri.Parent()
	if !ok || parentID != root.ID() {
		t.Errorf("moved triangle parent = %v/%v, want the root group", parentID, ok)
	}
}

func TestParseOBJFacesWithNormals(t *testing.T) {
	p := parse(t, `v 0 1 0
v -1 0 0
v 1 0 0

vn -1 0 0
vn 1 0 0
vn 0 1 0

f 1//3 2//1 3//2
f 1/0/3 2/102/1 3/14/2
`)

	g := p.DefaultGroup()
	if len(g.Children()) != 2 {
		t.Fatalf("got %d triangles, want 2", len(g.Children()))
	}

	t1 := childTriangle(t, g, 0)
	if !t1.Smooth {
		t.Fatal("faces with normals must produce smooth triangles")
	}
	if !t1.P1.Equal(p.Vertex(1)) || !t1.P2.Equal(p.Vertex(2)) || !t1.P3.Equal(p.Vertex(3)) {
		t.Errorf("vertices = %v %v %v", t1.P1, t1.P2, t1.P3)
	}
	if !t1.N1.Equal(p.Normal(3)) || !t1.N2.Equal(p.Normal(1)) || !t1.N3.Equal(p.Normal(2)) {
		t.Errorf("normals = %v %v %v", t1.N1, t1.N2, t1.N3)
	}

	t2 := childTriangle(t, g, 1)
	if !t2.Smooth || !t2.N1.Equal(t1.N1) || !t2.N2.Equal(t1.N2) || !t2.N3.Equal(t1.N3) {
		t.Error("texture indices must not affect the parsed normals")
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed vertex", "v 1 bogus 0\n"},
		{"short vertex", "v 1 2\n"},
		{"face index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"unnamed group", "g\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tc.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
