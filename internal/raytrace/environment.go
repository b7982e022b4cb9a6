package raytrace

import (
	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Environment is the scene's image-based light: an equirectangular
// HDR image sampled by every ray that escapes the scene, scaled by
// Strength and oriented by Transform.
type Environment struct {
	HDR       *image.Image
	Strength  float64
	Transform vecmath.Transform
}

// NewEnvironment returns an Environment lighting the scene with hdr at
// the given intensity multiplier.
func NewEnvironment(hdr *image.Image, strength float64) *Environment {
	return &Environment{HDR: hdr, Strength: strength, Transform: vecmath.DefaultTransform()}
}

// DefaultEnvironment returns a minimal black environment, matching the
// fallback every new scene starts with before a user loads an HDR.
func DefaultEnvironment() *Environment {
	return NewEnvironment(image.New(4, 4), 1.0)
}

// Shade returns the radiance contributed by a ray that left the scene
// without hitting anything, from direction ray.Direction.
func (e *Environment) Shade(ray vecmath.Ray) vecmath.Vec3 {
	transformed := vecmath.ApplyModelMatrixDirection(e.Transform.Matrix(), ray.Direction)
	uv := directionToEquirectangular(transformed)
	return e.HDR.PixelUV(uv[0], uv[1]).Mul(e.Strength)
}
