package shapes

import (
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// Computations is the precomputed shading state for one intersection: the hit
// point with its offset variants, the eye and normal vectors, and the
// refractive indices on both sides of the surface.
type Computations struct {
	T          float64
	Object     Shape
	Point      core.Point
	OverPoint  core.Point
	UnderPoint core.Point
	Eyev       core.Vector
	Normalv    core.Vector
	Reflectv   core.Vector
	Inside     bool
	N1, N2     float64
}

// PrepareComputations derives the shading state for a hit. xs is the complete
// intersection list the hit came from; it drives the container scan that
// determines N1 and N2. OverPoint and UnderPoint are the hit point nudged
// along the normal by Epsilon, used to launch secondary rays clear of the
// surface they start on.
func PrepareComputations(l Locator, hit Intersection, ray core.Ray, xs []Intersection) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.Position(hit.T),
		Eyev:   ray.Direction.Negate(),
	}

	comps.Normalv = NormalAt(l, hit.Object, comps.Point, hit)
	if comps.Normalv.Dot(comps.Eyev) < 0 {
		comps.Inside = true
		comps.Normalv = comps.Normalv.Negate()
	}

	offset := comps.Normalv.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.SubVec(offset)
	comps.Reflectv = ray.Direction.Reflect(comps.Normalv)

	comps.N1, comps.N2 = refractiveIndices(l, hit, xs)
	return comps
}

// refractiveIndices scans the intersection list in order, maintaining the
// stack of shapes the ray is currently inside. At the hit, N1 is the index of
// the innermost container being exited and N2 the index of the one being
// entered; empty space counts as vacuum.
func refractiveIndices(l Locator, hit Intersection, xs []Intersection) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []Shape

	for _, x := range xs {
		if x == hit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = ResolveMaterial(l, containers[len(containers)-1]).RefractiveIndex
			}
		}

		removed := false
		for i, c := range containers {
			if c.ID() == x.Object.ID() {
				containers = append(containers[:i], containers[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			containers = append(containers, x.Object)
		}

		if x == hit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = ResolveMaterial(l, containers[len(containers)-1]).RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the intersection: the
// fraction of light reflected rather than refracted. Total internal
// reflection returns 1.
func Schlick(comps Computations) float64 {
	cos := comps.Eyev.Dot(comps.Normalv)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2t := n * n * (1.0 - cos*cos)
		if sin2t > 1.0 {
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2t)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1.0-r0)*math.Pow(1.0-cos, 5)
}
