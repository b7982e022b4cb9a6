package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Glass is a dielectric that reflects on total internal reflection
// instead of rejecting the sample, so a stack of nested Glass objects
// (e.g. a bubble inside a glass sphere) behaves correctly: the medium
// popped while attempting to exit is pushed back if the exit attempt
// turns out to be a TIR bounce.
type Glass struct {
	Color     ColorPicker
	IORValue  float64
	Roughness float64
}

// NewGlass returns a Glass BSDF with the given index of refraction.
func NewGlass(color vecmath.Vec3, ior, roughness float64) *Glass {
	return &Glass{Color: ConstantColor(color), IORValue: ior, Roughness: roughness}
}

func (g *Glass) Name() string { return "glass" }

func (g *Glass) Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool) {
	if rng.NextFloat(0, 1) < g.Roughness {
		if !want.Contains(SamplingDiffuse) {
			return SampleData{}, false
		}
		return SampleData{Wi: diffuseBounceDirection(hit.Normal, rng), SamplingType: SamplingDiffuse}, true
	}

	var poppedMedium Medium
	havePopped := false
	if !hit.FrontFace {
		if m, ok := mediums.Remove(); ok {
			poppedMedium, havePopped = m, true
		} else {
			return SampleData{}, false
		}
	}

	var ratio float64
	if hit.FrontFace {
		top, ok := mediums.Latest()
		if !ok {
			return SampleData{}, false
		}
		ratio = top.IOR / g.IORValue
	} else {
		newTop, ok := mediums.Latest()
		if !ok {
			if havePopped {
				mediums.Add(poppedMedium)
			}
			return SampleData{}, false
		}
		ratio = g.IORValue / newTop.IOR
	}

	refracted := vecmath.Refract(wo.Mul(-1), hit.Normal, ratio)
	if !vecmath.NearZero(refracted, 1e-12) {
		if hit.FrontFace {
			mediums.Add(Medium{IOR: g.IORValue})
		}
		if !want.Contains(SamplingDiffuse) {
			if havePopped {
				mediums.Add(poppedMedium)
			}
			return SampleData{}, false
		}
		return SampleData{Wi: refracted.Mul(-1), SamplingType: SamplingDiffuse}, true
	}

	// Total internal reflection: restore the medium stack to its
	// pre-sample state and reflect instead.
	if havePopped {
		mediums.Add(poppedMedium)
	}
	if !want.Contains(SamplingReflection) {
		return SampleData{}, false
	}
	return SampleData{Wi: vecmath.Reflect(wo, hit.Normal), SamplingType: SamplingReflection}, true
}

func (g *Glass) Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3 {
	c, ok := g.Color.GetColor(hit.UV, textures)
	if !ok {
		return vecmath.Vec3{}
	}
	return c
}

func (g *Glass) Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool) {
	return vecmath.Vec3{}, false
}

func (g *Glass) IOR() float64 { return g.IORValue }

func (g *Glass) BaseColor() ColorPicker     { return g.Color }
func (g *Glass) SetBaseColor(c ColorPicker) { g.Color = c }
