package spectrum

import (
	"testing"

	"github.com/ishbosamiya/goray/internal/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestFromSRGBZeroIsZero(t *testing.T) {
	s := FromSRGB(vecmath.Vec3{0, 0, 0})
	assert.True(t, s.IsZero())
}

func TestFromSRGBWhiteRoundTrips(t *testing.T) {
	white := vecmath.Vec3{1, 1, 1}
	s := FromSRGB(white)
	got := s.ToSRGB()
	assert.InDelta(t, 1.0, got[0], 1e-9)
	assert.InDelta(t, 1.0, got[1], 1e-9)
	assert.InDelta(t, 1.0, got[2], 1e-9)
}

func TestFromSRGBArbitraryRoundTrips(t *testing.T) {
	c := vecmath.Vec3{0.2, 0.6, 0.9}
	got := FromSRGB(c).ToSRGB()
	assert.InDelta(t, c[0], got[0], 1e-9)
	assert.InDelta(t, c[1], got[1], 1e-9)
	assert.InDelta(t, c[2], got[2], 1e-9)
}

func TestAddIsLinearInCIEXYZ(t *testing.T) {
	a := FromSRGB(vecmath.Vec3{0.3, 0.1, 0.8})
	b := FromSRGB(vecmath.Vec3{0.5, 0.9, 0.2})
	sum := a.Add(b)

	ax, bx, sx := a.ToCIEXYZ(), b.ToCIEXYZ(), sum.ToCIEXYZ()
	assert.InDelta(t, ax[0]+bx[0], sx[0], 1e-9)
	assert.InDelta(t, ax[1]+bx[1], sx[1], 1e-9)
	assert.InDelta(t, ax[2]+bx[2], sx[2], 1e-9)
}

func TestMulZeroFillsDisjointWavelengths(t *testing.T) {
	a := Spectrum{}.withSample(500, 1.0)
	b := Spectrum{}.withSample(600, 1.0)
	assert.True(t, a.Mul(b).IsZero())
}

func TestMulAtCoincidentWavelength(t *testing.T) {
	a := Spectrum{}.withSample(500, 2.0)
	b := Spectrum{}.withSample(500, 3.0)
	got := a.Mul(b)
	assert.InDelta(t, 6.0, got.At(500), 1e-9)
}

func TestScale(t *testing.T) {
	a := Spectrum{}.withSample(500, 2.0)
	got := a.Scale(2.5)
	assert.InDelta(t, 5.0, got.At(500), 1e-9)
}

func TestYBarPeaksNearGreen(t *testing.T) {
	// The CIE luminosity function should be small in the deep violet
	// and red, and near its maximum around 555-570nm.
	assert.Less(t, CIEYBar(400), CIEYBar(560))
	assert.Less(t, CIEYBar(700), CIEYBar(560))
}

func TestD65RelativeIsPositive(t *testing.T) {
	for _, nm := range []float64{400, 500, 560, 600, 700} {
		assert.Greater(t, D65Relative(nm), 0.0)
	}
}
