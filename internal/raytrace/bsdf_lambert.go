package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Lambert is a perfectly diffuse (Lambertian) BSDF.
type Lambert struct {
	Color ColorPicker
}

// NewLambert returns a Lambert BSDF with a constant base color.
func NewLambert(color vecmath.Vec3) *Lambert {
	return &Lambert{Color: ConstantColor(color)}
}

func (l *Lambert) Name() string { return "lambert" }

func (l *Lambert) Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool) {
	if !want.Contains(SamplingDiffuse) {
		return SampleData{}, false
	}
	return SampleData{Wi: diffuseBounceDirection(hit.Normal, rng), SamplingType: SamplingDiffuse}, true
}

func (l *Lambert) Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3 {
	c, ok := l.Color.GetColor(hit.UV, textures)
	if !ok {
		return vecmath.Vec3{}
	}
	return c
}

func (l *Lambert) Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool) {
	return vecmath.Vec3{}, false
}

func (l *Lambert) IOR() float64 { return 1.0 }

func (l *Lambert) BaseColor() ColorPicker       { return l.Color }
func (l *Lambert) SetBaseColor(c ColorPicker)   { l.Color = c }
