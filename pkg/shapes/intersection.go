package shapes

import "sort"

// Intersection records a ray meeting a shape at parameter T. U and V are the
// barycentric coordinates of triangle hits and are zero for every other
// shape.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
}

// NewIntersection creates an intersection at parameter t.
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates an intersection carrying barycentric coordinates.
func NewIntersectionUV(t float64, object Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// SortIntersections orders intersections by ascending T. The sort is stable
// so coincident hits keep their insertion order.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the one with the smallest
// non-negative T. The input need not be sorted. The second return is false
// when every intersection lies behind the ray origin.
func Hit(xs []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
