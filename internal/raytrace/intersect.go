package raytrace

import "github.com/ishbosamiya/goray/internal/vecmath"

// ObjectID stably identifies an Object within a Scene for its lifetime.
type ObjectID uint64

// IntersectInfo is everything a hit point needs to be shaded: where it
// is, which way is out, and which primitive/object/shader produced it.
type IntersectInfo struct {
	T          float64
	Point      vecmath.Vec3
	Barycentric vecmath.Vec3
	Normal     vecmath.Vec3
	UV         vecmath.Vec2
	HasUV      bool
	FrontFace  bool

	PrimitiveIndex int
	ObjectID       ObjectID
	HasShader      bool
	ShaderID       ShaderID
}

// SetFaceNormal orients Normal to face against the incoming ray,
// recording whether the hit was on the geometric front face. outward
// must already be unit length and point away from the surface on its
// "outside".
func (info *IntersectInfo) SetFaceNormal(ray vecmath.Ray, outward vecmath.Vec3) {
	info.FrontFace = ray.Direction.Dot(outward) < 0
	if info.FrontFace {
		info.Normal = outward
	} else {
		info.Normal = outward.Mul(-1)
	}
}
