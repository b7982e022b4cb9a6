package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// DebugField selects which piece of an IntersectInfo a Debug BSDF
// visualizes as a color.
type DebugField int

const (
	DebugFieldNormal DebugField = iota
	DebugFieldUV
	DebugFieldBarycentric
)

// Debug is a visualization-only BSDF: it never scatters or emits, and
// Eval encodes the requested hit field as an RGB color instead of a
// physically meaningful reflectance.
type Debug struct {
	Field DebugField
}

func (d *Debug) Name() string { return "debug" }

func (d *Debug) Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool) {
	return SampleData{}, false
}

// Eval is unreachable: Sample never succeeds, so the integrator never
// needs the BSDF value, only Emission's encoded field.
func (d *Debug) Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3 {
	panic("raytrace: Debug.Eval is unreachable, Sample never returns a direction")
}

func (d *Debug) Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool) {
	switch d.Field {
	case DebugFieldNormal:
		return hit.Normal.Add(vecmath.Vec3{1, 1, 1}).Mul(0.5), true
	case DebugFieldUV:
		return vecmath.Vec3{hit.UV[0], hit.UV[1], 0}, true
	case DebugFieldBarycentric:
		return hit.Barycentric, true
	default:
		return vecmath.Vec3{}, true
	}
}

func (d *Debug) IOR() float64 { return 1.0 }

func (d *Debug) BaseColor() ColorPicker     { return ColorPicker{} }
func (d *Debug) SetBaseColor(c ColorPicker) {}
