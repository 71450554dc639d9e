package shapes

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// Triangle is a single triangle with precomputed edge vectors and face
// normal. A smooth triangle additionally carries per-vertex normals and
// interpolates between them for shading.
type Triangle struct {
	baseShape
	P1, P2, P3 core.Point
	E1, E2     core.Vector
	Normal     core.Vector
	N1, N2, N3 core.Vector
	Smooth     bool
}

// NewTriangle creates a flat triangle from three vertices.
func NewTriangle(p1, p2, p3 core.Point) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	return &Triangle{
		baseShape: newBaseShape(),
		P1:        p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

// NewSmoothTriangle creates a triangle with per-vertex normals for
// interpolated shading.
func NewSmoothTriangle(p1, p2, p3 core.Point, n1, n2, n3 core.Vector) *Triangle {
	t := NewTriangle(p1, p2, p3)
	t.N1, t.N2, t.N3 = n1, n2, n3
	t.Smooth = true
	return t
}

// LocalIntersect applies the Moller-Trumbore algorithm. The barycentric u and
// v of the hit are recorded on the intersection for smooth shading.
func (tri *Triangle) LocalIntersect(ray core.Ray) []Intersection {
	dirCrossE2 := ray.Direction.Cross(tri.E2)
	det := tri.E1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Sub(tri.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(tri.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * tri.E2.Dot(originCrossE1)
	return []Intersection{NewIntersectionUV(t, tri, u, v)}
}

// LocalNormalAt returns the face normal, or for smooth triangles the vertex
// normals blended by the hit's barycentric coordinates.
func (tri *Triangle) LocalNormalAt(_ core.Point, hit Intersection) core.Vector {
	if !tri.Smooth {
		return tri.Normal
	}
	return tri.N2.Multiply(hit.U).
		Add(tri.N3.Multiply(hit.V)).
		Add(tri.N1.Multiply(1 - hit.U - hit.V))
}
