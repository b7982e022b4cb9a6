package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Refraction is a pure dielectric transmission BSDF: it always bends
// the ray through the surface (picking a diffuse-ish bounce with
// probability Roughness), and on total internal reflection it rejects
// the sample rather than reflecting - see Glass for a variant that
// reflects on TIR.
type Refraction struct {
	Color     ColorPicker
	IORValue  float64
	Roughness float64
}

// NewRefraction returns a Refraction BSDF with the given index of
// refraction.
func NewRefraction(color vecmath.Vec3, ior, roughness float64) *Refraction {
	return &Refraction{Color: ConstantColor(color), IORValue: ior, Roughness: roughness}
}

func (r *Refraction) Name() string { return "refraction" }

func (r *Refraction) Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool) {
	if rng.NextFloat(0, 1) < r.Roughness {
		if !want.Contains(SamplingDiffuse) {
			return SampleData{}, false
		}
		return SampleData{Wi: diffuseBounceDirection(hit.Normal, rng), SamplingType: SamplingDiffuse}, true
	}
	if !want.Contains(SamplingDiffuse) {
		return SampleData{}, false
	}
	wi, ok := refract(r.IORValue, wo, mediums, hit)
	if !ok {
		return SampleData{}, false
	}
	return SampleData{Wi: wi, SamplingType: SamplingDiffuse}, true
}

// refract implements the shared entering/exiting medium-stack protocol
// used by both Refraction and RefractionDispersion: on entry it computes the eta ratio
// against the stack's current top and pushes selfIOR after a successful
// refraction; on exit it pops the stack first (the medium being left)
// and computes the ratio against what's now on top. Returns false on
// total internal reflection or on an empty stack (non-manifold exit).
func refract(selfIOR float64, wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo) (vecmath.Vec3, bool) {
	var ratio float64
	if hit.FrontFace {
		top, ok := mediums.Latest()
		if !ok {
			return vecmath.Vec3{}, false
		}
		ratio = top.IOR / selfIOR
	} else {
		if _, ok := mediums.Remove(); !ok {
			return vecmath.Vec3{}, false
		}
		newTop, ok := mediums.Latest()
		if !ok {
			return vecmath.Vec3{}, false
		}
		ratio = selfIOR / newTop.IOR
	}

	refracted := vecmath.Refract(wo.Mul(-1), hit.Normal, ratio)
	if vecmath.NearZero(refracted, 1e-12) {
		return vecmath.Vec3{}, false
	}
	if hit.FrontFace {
		mediums.Add(Medium{IOR: selfIOR})
	}
	return refracted.Mul(-1), true
}

func (r *Refraction) Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3 {
	c, ok := r.Color.GetColor(hit.UV, textures)
	if !ok {
		return vecmath.Vec3{}
	}
	return c
}

func (r *Refraction) Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool) {
	return vecmath.Vec3{}, false
}

func (r *Refraction) IOR() float64 { return r.IORValue }

func (r *Refraction) BaseColor() ColorPicker     { return r.Color }
func (r *Refraction) SetBaseColor(c ColorPicker) { r.Color = c }
