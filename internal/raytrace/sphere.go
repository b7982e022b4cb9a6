package raytrace

import (
	"math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Sphere is an analytic sphere primitive, defined in object-local
// space (a Transform elsewhere moves it into the scene).
type Sphere struct {
	Center vecmath.Vec3
	Radius float64
}

// NewSphere returns a sphere of the given radius centered at center.
func NewSphere(center vecmath.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit intersects ray against the sphere over [tMin, tMax], returning
// the nearest root in range. UV is the equirectangular projection of
// the point relative to the sphere's center, matching the mapping
// environment lookups use.
func (s *Sphere) Hit(ray vecmath.Ray, tMin, tMax float64) (IntersectInfo, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return IntersectInfo{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return IntersectInfo{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(s.Center).Mul(1.0 / s.Radius)
	uv := directionToEquirectangular(point.Sub(s.Center))

	info := IntersectInfo{
		T:     root,
		Point: point,
		UV:    uv,
		HasUV: true,
	}
	info.SetFaceNormal(ray, outwardNormal)
	return info, true
}
