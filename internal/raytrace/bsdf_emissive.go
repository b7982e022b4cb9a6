package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Emissive is a pure light source: it never scatters, only emits.
type Emissive struct {
	Color ColorPicker
	Power float64
}

// NewEmissive returns an Emissive BSDF radiating Power*Color.
func NewEmissive(color vecmath.Vec3, power float64) *Emissive {
	return &Emissive{Color: ConstantColor(color), Power: power}
}

func (e *Emissive) Name() string { return "emissive" }

func (e *Emissive) Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool) {
	return SampleData{}, false
}

// Eval panics: an emissive-only material is never expected to be
// evaluated as a BSDF, since Sample never succeeds.
func (e *Emissive) Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3 {
	panic("raytrace: Emissive.Eval is unreachable, Sample never returns a direction")
}

func (e *Emissive) Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool) {
	c, ok := e.Color.GetColor(hit.UV, textures)
	if !ok {
		return vecmath.Vec3{}, false
	}
	return c.Mul(e.Power), true
}

func (e *Emissive) IOR() float64 { return 1.0 }

func (e *Emissive) BaseColor() ColorPicker     { return e.Color }
func (e *Emissive) SetBaseColor(c ColorPicker) { e.Color = c }
