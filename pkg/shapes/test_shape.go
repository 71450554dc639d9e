package shapes

import "github.com/user/go-whitted-raytracer/pkg/core"

// TestShape is a synthetic primitive for exercising the shared intersect and
// normal plumbing. Its intersection parameter is the sum of the local ray's
// components, which makes the applied transform observable, and its normal is
// the local point read back as a vector.
type TestShape struct {
	baseShape
}

// NewTestShape creates a test shape with the identity transform.
func NewTestShape() *TestShape {
	return &TestShape{baseShape: newBaseShape()}
}

// LocalIntersect reports one intersection whose t encodes the local ray.
func (s *TestShape) LocalIntersect(ray core.Ray) []Intersection {
	t := ray.Origin.X + ray.Origin.Y + ray.Origin.Z +
		ray.Direction.X + ray.Direction.Y + ray.Direction.Z
	return []Intersection{NewIntersection(t, s)}
}

// LocalNormalAt echoes the local point back as a vector.
func (s *TestShape) LocalNormalAt(point core.Point, _ Intersection) core.Vector {
	return core.NewVector(point.X, point.Y, point.Z)
}
