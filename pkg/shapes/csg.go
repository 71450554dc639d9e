package shapes

import "github.com/user/go-whitted-raytracer/pkg/core"

// Operation selects how a CSG node combines its two operands.
type Operation int

// The three constructive solid geometry operations.
const (
	OpUnion Operation = iota
	OpIntersection
	OpDifference
)

// CSG combines two shapes with a set operation. Intersections against a CSG
// node are the operands' intersections filtered down to the crossings that
// lie on the combined surface.
type CSG struct {
	baseShape
	Operation Operation
	Left      Shape
	Right     Shape
}

// NewCSG creates a CSG node over the two operands, adopting both as
// children. Operands must be distinct and not yet owned by another
// composite; violating either panics.
func NewCSG(op Operation, left, right Shape) *CSG {
	if left.ID() == right.ID() {
		panic("csg operands must be distinct shapes")
	}
	for _, operand := range []Shape{left, right} {
		if _, ok := operand.Parent(); ok {
			panic("shape already has a parent")
		}
	}
	c := &CSG{
		baseShape: newBaseShape(),
		Operation: op,
		Left:      left,
		Right:     right,
	}
	left.SetParent(c.id)
	right.SetParent(c.id)
	return c
}

// IntersectionAllowed is the CSG truth table: given which operand was hit
// (lhit) and whether the crossing happens inside each operand (inl, inr), it
// decides whether the crossing lies on the combined surface.
//
// Union keeps crossings on either operand that are outside the other.
// Intersection keeps crossings on one operand that are inside the other.
// Difference keeps left crossings outside the right, and right crossings
// inside the left.
func IntersectionAllowed(op Operation, lhit, inl, inr bool) bool {
	switch op {
	case OpUnion:
		return (lhit && !inr) || (!lhit && !inl)
	case OpIntersection:
		return (lhit && inr) || (!lhit && inl)
	case OpDifference:
		return (lhit && !inr) || (!lhit && inl)
	default:
		return false
	}
}

// FilterIntersections walks the merged intersection list in order, toggling
// the inside-left and inside-right state at each crossing and keeping the
// crossings the operation allows.
func (c *CSG) FilterIntersections(xs []Intersection) []Intersection {
	inl := false
	inr := false

	var result []Intersection
	for _, x := range xs {
		lhit := c.Left.Includes(x.Object)

		if IntersectionAllowed(c.Operation, lhit, inl, inr) {
			result = append(result, x)
		}

		if lhit {
			inl = !inl
		} else {
			inr = !inr
		}
	}
	return result
}

// ChildByID searches both operands' subtrees.
func (c *CSG) ChildByID(id uint64) (Shape, bool) {
	for _, operand := range []Shape{c.Left, c.Right} {
		if operand.ID() == id {
			return operand, true
		}
		if found, ok := operand.ChildByID(id); ok {
			return found, true
		}
	}
	return nil, false
}

// ObjectByID lets a CSG node act as a Locator for its own subtree.
func (c *CSG) ObjectByID(id uint64) (Shape, bool) {
	if c.id == id {
		return c, true
	}
	return c.ChildByID(id)
}

// Includes reports whether other is the node itself or lives in either
// operand.
func (c *CSG) Includes(other Shape) bool {
	return c.id == other.ID() || c.Left.Includes(other) || c.Right.Includes(other)
}

// LocalIntersect merges both operands' intersections in t order and filters
// them through the operation's truth table.
func (c *CSG) LocalIntersect(ray core.Ray) []Intersection {
	xs := Intersect(c.Left, ray)
	xs = append(xs, Intersect(c.Right, ray)...)
	SortIntersections(xs)
	return c.FilterIntersections(xs)
}

// LocalNormalAt panics: CSG nodes delegate shading to the operand that was
// hit.
func (c *CSG) LocalNormalAt(_ core.Point, _ Intersection) core.Vector {
	panic("csg node has no local normal")
}
