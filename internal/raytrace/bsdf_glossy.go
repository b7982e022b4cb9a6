package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Glossy mixes a perfect mirror reflection with a diffuse bounce,
// chosen by a Bernoulli trial on Roughness. This is a known
// simplification of a real microfacet model (see DESIGN.md); it gives
// plausible but not physically accurate glossy highlights.
type Glossy struct {
	Color     ColorPicker
	Roughness float64
}

// NewGlossy returns a Glossy BSDF. Roughness 0 is a perfect mirror;
// roughness 1 is equivalent to Lambert.
func NewGlossy(color vecmath.Vec3, roughness float64) *Glossy {
	return &Glossy{Color: ConstantColor(color), Roughness: roughness}
}

func (g *Glossy) Name() string { return "glossy" }

func (g *Glossy) Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool) {
	if rng.NextFloat(0, 1) < g.Roughness {
		if !want.Contains(SamplingDiffuse) {
			return SampleData{}, false
		}
		return SampleData{Wi: diffuseBounceDirection(hit.Normal, rng), SamplingType: SamplingDiffuse}, true
	}
	if !want.Contains(SamplingReflection) {
		return SampleData{}, false
	}
	// wi follows the same convention as the next ray direction
	// (-wi): reflecting the outgoing direction wo about the surface
	// normal gives the direction a mirror would send the incoming ray,
	// negated.
	wi := vecmath.Reflect(wo, hit.Normal)
	return SampleData{Wi: wi, SamplingType: SamplingReflection}, true
}

func (g *Glossy) Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3 {
	c, ok := g.Color.GetColor(hit.UV, textures)
	if !ok {
		return vecmath.Vec3{}
	}
	return c
}

func (g *Glossy) Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool) {
	return vecmath.Vec3{}, false
}

func (g *Glossy) IOR() float64 { return 1.0 }

func (g *Glossy) BaseColor() ColorPicker     { return g.Color }
func (g *Glossy) SetBaseColor(c ColorPicker) { g.Color = c }
