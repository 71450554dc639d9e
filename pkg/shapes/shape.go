// Package shapes provides the geometric primitives of the tracer, the
// composites that assemble them (Group, CSG), and the intersection records
// the shading pipeline consumes.
//
// Every primitive implements its intersection and normal logic in its own
// canonical object space. The world-space entry points Intersect and NormalAt
// are shared functions, never reimplemented per shape, so the
// transform-handling protocol cannot drift between primitives.
package shapes

import (
	"sync/atomic"

	"github.com/user/go-whitted-raytracer/pkg/core"
	"github.com/user/go-whitted-raytracer/pkg/material"
)

var idCounter uint64

func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}

// Shape is the capability contract every primitive and composite satisfies.
// LocalIntersect and LocalNormalAt operate in the shape's object space; the
// package-level Intersect and NormalAt wrap them with the transform protocol.
type Shape interface {
	// ID returns the shape's unique handle. IDs are process-unique and
	// assigned at construction.
	ID() uint64

	// Parent returns the ID of the enclosing composite, if any. The parent
	// is held as an ID rather than a reference; a Locator resolves it.
	Parent() (uint64, bool)
	SetParent(id uint64)
	ClearParent()

	Transform() core.Matrix
	SetTransform(m core.Matrix)

	Material() material.Material
	SetMaterial(m material.Material)

	// InheritsMaterial reports whether the shape defers to its parent's
	// material instead of its own.
	InheritsMaterial() bool
	SetInheritsMaterial(inherit bool)

	// LocalIntersect intersects a ray already in object space. No hit is an
	// empty slice, never an error.
	LocalIntersect(ray core.Ray) []Intersection

	// LocalNormalAt computes the surface normal at an object-space point.
	// The triggering intersection carries the u/v coordinates smooth
	// triangles need; other shapes ignore it.
	LocalNormalAt(point core.Point, hit Intersection) core.Vector

	// ChildByID searches the shape's subtree for the given ID. Leaf shapes
	// report no match.
	ChildByID(id uint64) (Shape, bool)

	// Includes reports whether other is this shape or, for composites,
	// contained anywhere beneath it.
	Includes(other Shape) bool
}

// Locator resolves a shape ID back to the shape. The world implements it;
// Group does too, so a detached subtree can resolve its own parents.
type Locator interface {
	ObjectByID(id uint64) (Shape, bool)
}

// baseShape carries the state every shape shares: identity, parent link,
// transform, and material. Primitives embed it and add only their local
// geometry.
type baseShape struct {
	id               uint64
	parentID         uint64
	hasParent        bool
	transform        core.Matrix
	material         material.Material
	inheritsMaterial bool
}

func newBaseShape() baseShape {
	return baseShape{
		id:        nextID(),
		transform: core.Identity,
		material:  material.NewMaterial(),
	}
}

func (b *baseShape) ID() uint64 { return b.id }

func (b *baseShape) Parent() (uint64, bool) { return b.parentID, b.hasParent }

func (b *baseShape) SetParent(id uint64) {
	b.parentID = id
	b.hasParent = true
}

func (b *baseShape) ClearParent() {
	b.parentID = 0
	b.hasParent = false
}

func (b *baseShape) Transform() core.Matrix { return b.transform }

func (b *baseShape) SetTransform(m core.Matrix) { b.transform = m }

func (b *baseShape) Material() material.Material { return b.material }

func (b *baseShape) SetMaterial(m material.Material) { b.material = m }

func (b *baseShape) InheritsMaterial() bool { return b.inheritsMaterial }

func (b *baseShape) SetInheritsMaterial(inherit bool) { b.inheritsMaterial = inherit }

func (b *baseShape) ChildByID(id uint64) (Shape, bool) { return nil, false }

func (b *baseShape) Includes(other Shape) bool { return b.id == other.ID() }

// Intersect transforms the ray into the shape's object space and delegates to
// LocalIntersect. This is the only place the inverse transform is applied to
// incoming rays.
func Intersect(s Shape, ray core.Ray) []Intersection {
	local := ray.Transform(s.Transform().Inverse())
	return s.LocalIntersect(local)
}

// NormalAt computes the world-space surface normal at a world-space point.
// The point walks down through the parent chain into object space, the shape
// answers its local normal, and the normal walks back up to world space.
func NormalAt(l Locator, s Shape, worldPoint core.Point, hit Intersection) core.Vector {
	localPoint := WorldToObject(l, s, worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	return NormalToWorld(l, s, localNormal)
}

// WorldToObject converts a world-space point into the shape's object space,
// applying ancestor inverse transforms outermost-first and the shape's own
// inverse last.
func WorldToObject(l Locator, s Shape, point core.Point) core.Point {
	if parentID, ok := s.Parent(); ok {
		point = WorldToObject(l, resolveParent(l, parentID), point)
	}
	return s.Transform().Inverse().MulPoint(point)
}

// NormalToWorld converts an object-space normal into world space, applying
// the shape's own inverse-transpose first and ancestors' afterwards,
// renormalizing at every level.
func NormalToWorld(l Locator, s Shape, normal core.Vector) core.Vector {
	normal = s.Transform().Inverse().Transpose().MulVector(normal).Normalize()
	if parentID, ok := s.Parent(); ok {
		normal = NormalToWorld(l, resolveParent(l, parentID), normal)
	}
	return normal
}

// ResolveMaterial returns the material shading should use for the shape,
// walking up the parent chain while shapes defer to their parents.
func ResolveMaterial(l Locator, s Shape) material.Material {
	if s.InheritsMaterial() {
		if parentID, ok := s.Parent(); ok {
			return ResolveMaterial(l, resolveParent(l, parentID))
		}
	}
	return s.Material()
}

// resolveParent looks up a parent shape by ID. A parent the locator cannot
// resolve is a broken hierarchy: continuing would silently produce wrong
// geometry, so it panics instead.
func resolveParent(l Locator, parentID uint64) Shape {
	if l == nil {
		panic("shape has a parent but no locator to resolve it")
	}
	parent, found := l.ObjectByID(parentID)
	if !found {
		panic("shape parent not found")
	}
	return parent
}
