package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// GlassDispersion is Glass with a wavelength-dependent index of
// refraction: it reflects on total internal reflection instead of
// rejecting the sample, and bends different wavelengths by different
// amounts, producing chromatic dispersion (e.g. a diamond's fire).
type GlassDispersion struct {
	Color     ColorPicker
	Material  DispersiveMaterial
	Roughness float64
}

// NewGlassDispersion returns a GlassDispersion BSDF using material's
// tabulated IOR curve.
func NewGlassDispersion(color vecmath.Vec3, material DispersiveMaterial, roughness float64) *GlassDispersion {
	return &GlassDispersion{Color: ConstantColor(color), Material: material, Roughness: roughness}
}

func (g *GlassDispersion) Name() string { return "glass_dispersion" }

func (g *GlassDispersion) Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool) {
	if rng.NextFloat(0, 1) < g.Roughness {
		if !want.Contains(SamplingDiffuse) {
			return SampleData{}, false
		}
		return SampleData{Wi: diffuseBounceDirection(hit.Normal, rng), SamplingType: SamplingDiffuse}, true
	}

	selfIOR := g.Material.IOR(centralWavelength(wavelengths))

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
		ratio = top.IOR / selfIOR
	} else {
		newTop, ok := mediums.Latest()
		if !ok {
			if havePopped {
				mediums.Add(poppedMedium)
			}
			return SampleData{}, false
		}
		ratio = selfIOR / newTop.IOR
	}

	refracted := vecmath.Refract(wo.Mul(-1), hit.Normal, ratio)
	if !vecmath.NearZero(refracted, 1e-12) {
		if hit.FrontFace {
			mediums.Add(Medium{IOR: selfIOR})
		}
		if !want.Contains(SamplingDiffuse) {
			if havePopped {
				mediums.Add(poppedMedium)
			}
			return SampleData{}, false
		}
		return SampleData{Wi: refracted.Mul(-1), SamplingType: SamplingDiffuse}, true
	}

	// Total internal reflection: restore the medium stack and reflect.
	if havePopped {
		mediums.Add(poppedMedium)
	}
	if !want.Contains(SamplingReflection) {
		return SampleData{}, false
	}
	return SampleData{Wi: vecmath.Reflect(wo, hit.Normal), SamplingType: SamplingReflection}, true
}

func (g *GlassDispersion) Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3 {
	c, ok := g.Color.GetColor(hit.UV, textures)
	if !ok {
		return vecmath.Vec3{}
	}
	return c
}

func (g *GlassDispersion) Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool) {
	return vecmath.Vec3{}, false
}

func (g *GlassDispersion) IOR() float64 { return g.Material.IOR(580) }

func (g *GlassDispersion) BaseColor() ColorPicker     { return g.Color }
func (g *GlassDispersion) SetBaseColor(c ColorPicker) { g.Color = c }
