package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// SamplingType tags which lobe a BSDF sample was drawn from.
type SamplingType uint8

const (
	SamplingDiffuse SamplingType = 1 << iota
	SamplingGlossy
	SamplingReflection
)

// SamplingTypes is a bitset of SamplingType values. AllSamplingTypes
// requests every lobe a BSDF supports.
type SamplingTypes uint8

const AllSamplingTypes SamplingTypes = SamplingTypes(SamplingDiffuse | SamplingGlossy | SamplingReflection)

// Contains reports whether t is requested by s.
func (s SamplingTypes) Contains(t SamplingType) bool {
	return s&SamplingTypes(t) != 0
}

// SampleData is what BSDF.Sample returns: the incoming direction (wi),
// the reverse of the direction the next ray will be traced along, and
// which lobe produced it.
type SampleData struct {
	Wi          vecmath.Vec3
	SamplingType SamplingType
}

// BSDF is the shading protocol every material implements. wo always
// points away from the surface, back toward the path vertex the ray
// arrived from; wi (inside SampleData) is the reverse of the next ray's
// direction: the integrator traces the next ray along -wi.
type BSDF interface {
	// Sample draws a scattering direction at hit, given the outgoing
	// direction wo and the current medium stack (which refractive
	// BSDFs push/pop). wavelengths carries the path's tracked hero
	// wavelengths; only dispersive BSDFs consult it. RenderScene always
	// passes nil, so in rendered images dispersive BSDFs use the green
	// canonical wavelength. Returns false if no direction could be sampled
	// (e.g. emissive-only materials, or a rejected total-internal
	// reflection path).
	Sample(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, want SamplingTypes, wavelengths []float64, rng *pkgmath.SeededRNG) (SampleData, bool)

	// Eval returns the BSDF's value for the (wi, wo) direction pair at
	// hit, in linear RGB.
	Eval(wi, wo vecmath.Vec3, hit *IntersectInfo, textures *TextureList) vecmath.Vec3

	// Emission returns the radiant exitance toward wo, or false for
	// non-emissive materials.
	Emission(wo vecmath.Vec3, mediums *Mediums, hit *IntersectInfo, textures *TextureList) (vecmath.Vec3, bool)

	// IOR returns the material's index of refraction (1.0 for
	// non-refractive materials).
	IOR() float64

	// Name identifies the BSDF kind for diagnostics and scene I/O.
	Name() string

	// BaseColor and SetBaseColor access the material's primary color
	// source.
	BaseColor() ColorPicker
	SetBaseColor(ColorPicker)
}
