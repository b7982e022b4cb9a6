package raytrace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

func TestDiamondIORInterpolatesBetweenTabulatedSamples(t *testing.T) {
	lo := DiamondMaterial.IOR(564)
	hi := DiamondMaterial.IOR(620)
	mid := DiamondMaterial.IOR(592)
	assert.Greater(t, lo, hi, "diamond IOR decreases with wavelength over this range")
	assert.Less(t, mid, lo)
	assert.Greater(t, mid, hi)
}

func TestDiamondIORClampsOutsideTable(t *testing.T) {
	assert.Equal(t, DiamondMaterial.IOR(100), DiamondMaterial.IOR(365))
	assert.Equal(t, DiamondMaterial.IOR(5000), DiamondMaterial.IOR(886))
}

func TestCentralWavelengthFallsBackWithoutTrackedWavelengths(t *testing.T) {
	assert.Equal(t, float64(549.0), centralWavelength(nil))
}

func TestCentralWavelengthPicksMiddleSample(t *testing.T) {
	assert.Equal(t, 500.0, centralWavelength([]float64{400, 500, 600}))
}

func TestRefractionDispersionSeparatesWavelengths(t *testing.T) {
	bsdf := NewRefractionDispersion(vecmath.Vec3{1, 1, 1}, DiamondMaterial, 0)
	mediumsRed := NewMediumsWithAir()
	mediumsBlue := NewMediumsWithAir()
	hit := &IntersectInfo{Normal: vecmath.Vec3{0, 1, 0}, FrontFace: true}
	wo := vecmath.Vec3{0.3, 0.7, 0}.Normalize()

	rngRed := pkgmath.NewSeededRNG(1)
	sampleRed, ok := bsdf.Sample(wo, mediumsRed, hit, AllSamplingTypes, []float64{620}, rngRed)
	assert.True(t, ok)

	rngBlue := pkgmath.NewSeededRNG(1)
	sampleBlue, ok := bsdf.Sample(wo, mediumsBlue, hit, AllSamplingTypes, []float64{450}, rngBlue)
	assert.True(t, ok)

	assert.NotEqual(t, sampleRed.Wi, sampleBlue.Wi, "different wavelengths should refract at different angles")
}

func TestGlassDispersionReflectsOnTotalInternalReflection(t *testing.T) {
	bsdf := NewGlassDispersion(vecmath.Vec3{1, 1, 1}, DiamondMaterial, 0)
	mediums := NewMediumsWithAir()
	mediums.Add(Medium{IOR: DiamondMaterial.IOR(580)})
	// grazing angle while exiting a much denser medium triggers TIR.
	hit := &IntersectInfo{Normal: vecmath.Vec3{0, 1, 0}, FrontFace: false}
	wo := vecmath.Vec3{0.99, 0.01, 0}.Normalize()
	rng := pkgmath.NewSeededRNG(1)

	sample, ok := bsdf.Sample(wo, mediums, hit, AllSamplingTypes, []float64{550}, rng)
	assert.True(t, ok)
	assert.Equal(t, SamplingReflection, sample.SamplingType)
	assert.Equal(t, 2, mediums.Depth(), "TIR must restore the popped medium")
}
