package shapes

import "github.com/user/go-whitted-raytracer/pkg/core"

// Group is a composite shape with no surface of its own. Its transform
// applies to everything beneath it, so nested groups compose their
// transforms down the tree.
type Group struct {
	baseShape
	children []Shape
}

// NewGroup creates an empty group with the identity transform.
func NewGroup() *Group {
	return &Group{baseShape: newBaseShape()}
}

// AddChild adopts a shape into the group, setting its parent link. A shape
// has at most one parent and the hierarchy is a tree, so adopting a shape
// that already has a parent, or one whose subtree contains this group,
// panics.
func (g *Group) AddChild(child Shape) {
	if _, ok := child.Parent(); ok {
		panic("shape already has a parent")
	}
	if child.Includes(g) {
		panic("adopting this shape would create a cycle")
	}
	child.SetParent(g.id)
	g.children = append(g.children, child)
}

// Children returns the group's direct children.
func (g *Group) Children() []Shape {
	return g.children
}

// TakeChildren detaches every child from the group, clearing their parent
// links, and returns them so they can be adopted elsewhere.
func (g *Group) TakeChildren() []Shape {
	children := g.children
	g.children = nil
	for _, child := range children {
		child.ClearParent()
	}
	return children
}

// ChildByID searches the subtree for a shape, depth-first.
func (g *Group) ChildByID(id uint64) (Shape, bool) {
	for _, child := range g.children {
		if child.ID() == id {
			return child, true
		}
		if found, ok := child.ChildByID(id); ok {
			return found, true
		}
	}
	return nil, false
}

// ObjectByID lets a group act as a Locator for its own subtree, itself
// included.
func (g *Group) ObjectByID(id uint64) (Shape, bool) {
	if g.id == id {
		return g, true
	}
	return g.ChildByID(id)
}

// Includes reports whether other is the group itself or any descendant.
func (g *Group) Includes(other Shape) bool {
	if g.id == other.ID() {
		return true
	}
	for _, child := range g.children {
		if child.Includes(other) {
			return true
		}
	}
	return false
}

// LocalIntersect gathers the intersections of every child and merges them
// into one list sorted by t.
func (g *Group) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	SortIntersections(xs)
	return xs
}

// LocalNormalAt panics: groups have no surface, so asking for their normal is
// always a caller bug.
func (g *Group) LocalNormalAt(_ core.Point, _ Intersection) core.Vector {
	panic("group has no local normal")
}
