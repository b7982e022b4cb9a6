package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// RefractionDispersion is Refraction with a wavelength-dependent index
// of refraction, so white light separates into a spectrum when it
// bends through the surface. It never reflects on total internal
// reflection, matching Refraction.
type RefractionDispersion struct {
	Color     ColorPicker
	Material  DispersiveMaterial
	Roughness float64
}

// NewRefractionDispersion returns a RefractionDispersion BSDF using
// material's tabulated IOR curve.
func NewRefractionDispersion(color vecmath.Vec3, material DispersiveMaterial, roughness float64) *RefractionDispersion {
	return &RefractionDispersion{Color: ConstantColor(color), Material: material, Roughness: roughness}
}

func (r *RefractionDispersion) Name() string { return "refraction_dispersion" }

func (r *RefractionDispersion) Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool) {
	if rng.NextFloat(0, 1) < r.Roughness {
		if !want.Contains(SamplingDiffuse) {
			return SampleData{}, false
		}
		return SampleData{Wi: diffuseBounceDirection(hit.Normal, rng), SamplingType: SamplingDiffuse}, true
	}
	if !want.Contains(SamplingDiffuse) {
		return SampleData{}, false
	}
	selfIOR := r.Material.IOR(centralWavelength(wavelengths))
	wi, ok := refract(selfIOR, wo, mediums, hit)
	if !ok {
		return SampleData{}, false
	}
	return SampleData{Wi: wi, SamplingType: SamplingDiffuse}, true
}

func (r *RefractionDispersion) Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3 {
	c, ok := r.Color.GetColor(hit.UV, textures)
	if !ok {
		return vecmath.Vec3{}
	}
	return c
}

func (r *RefractionDispersion) Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool) {
	return vecmath.Vec3{}, false
}

// IOR reports the index of refraction at 580nm, a representative
// mid-spectrum value used wherever a single IOR scalar is needed
// (e.g. viewport preview shading that doesn't track wavelengths).
func (r *RefractionDispersion) IOR() float64 { return r.Material.IOR(580) }

func (r *RefractionDispersion) BaseColor() ColorPicker     { return r.Color }
func (r *RefractionDispersion) SetBaseColor(c ColorPicker) { r.Color = c }
