package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayAt(t *testing.T) {
	r := NewRay(Vec3{1, 2, 3}, Vec3{0, 0, 1})
	assert.Equal(t, Vec3{1, 2, 3}, r.At(0))
	got := r.At(4)
	assert.InDelta(t, 1.0, got[0], 1e-9)
	assert.InDelta(t, 2.0, got[1], 1e-9)
	assert.InDelta(t, 7.0, got[2], 1e-9)
}

func TestRayAtParallelToDirection(t *testing.T) {
	r := NewRay(Vec3{0, 0, 0}, Vec3{1, 2, 3})
	diff := r.At(5).Sub(r.Origin)
	cross := diff.Cross(r.Direction)
	assert.InDelta(t, 0.0, cross.Len(), 1e-9)
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, c := range []float64{0, 0.01, 0.2, 0.5, 0.9, 1.0} {
		got := LinearToSRGB(SRGBToLinear(c))
		assert.InDelta(t, c, got, 1e-6)
	}
}

func TestReflectPreservesAngle(t *testing.T) {
	n := Vec3{0, 1, 0}
	v := Vec3{1, -1, 0}.Normalize()
	out := Reflect(v, n)
	assert.InDelta(t, v.Dot(n), -out.Dot(n), 1e-9)
}

func TestRefractTotalInternalReflection(t *testing.T) {
	n := Vec3{0, 1, 0}
	// A grazing ray going from dense (eta ratio >1) to less dense medium
	// at a steep angle should totally internally reflect.
	v := Vec3{0.999, -0.05, 0}.Normalize()
	out := Refract(v, n, 1.5)
	require.True(t, NearZero(out, 1e-9))
}

func TestTransformIdentity(t *testing.T) {
	tr := DefaultTransform()
	m := tr.Matrix()
	p := Vec3{3, -2, 7}
	got := ApplyModelMatrixPoint(m, p)
	assert.InDelta(t, p[0], got[0], 1e-9)
	assert.InDelta(t, p[1], got[1], 1e-9)
	assert.InDelta(t, p[2], got[2], 1e-9)
}

func TestTransformTranslateOnly(t *testing.T) {
	tr := DefaultTransform()
	tr.Location = Vec3{1, 2, 3}
	got := ApplyModelMatrixPoint(tr.Matrix(), Vec3{0, 0, 0})
	assert.InDelta(t, 1.0, got[0], 1e-9)
	assert.InDelta(t, 2.0, got[1], 1e-9)
	assert.InDelta(t, 3.0, got[2], 1e-9)
}

func TestTransformRotateZ90(t *testing.T) {
	tr := DefaultTransform()
	tr.Rotation = Vec3{0, 0, 90}
	got := ApplyModelMatrixPoint(tr.Matrix(), Vec3{1, 0, 0})
	assert.InDelta(t, 0.0, got[0], 1e-9)
	assert.InDelta(t, 1.0, got[1], 1e-9)
	assert.InDelta(t, 0.0, got[2], 1e-9)
}

func TestLuminanceWhiteIsOne(t *testing.T) {
	assert.InDelta(t, 1.0, Luminance(Vec3{1, 1, 1}), 1e-9)
}

func TestXYZRoundTrip(t *testing.T) {
	rgb := Vec3{0.3, 0.6, 0.2}
	xyz := LinearSRGBToXYZ(rgb)
	back := XYZToLinearSRGB(xyz)
	assert.InDelta(t, rgb[0], back[0], 1e-6)
	assert.InDelta(t, rgb[1], back[1], 1e-6)
	assert.InDelta(t, rgb[2], back[2], 1e-6)
}

func TestNearZero(t *testing.T) {
	assert.True(t, NearZero(Vec3{1e-10, -1e-12, 0}, 1e-9))
	assert.False(t, NearZero(Vec3{1e-3, 0, 0}, 1e-9))
}

func TestApplyModelMatrixDirectionIgnoresTranslation(t *testing.T) {
	tr := DefaultTransform()
	tr.Location = Vec3{100, 100, 100}
	d := Vec3{1, 0, 0}
	got := ApplyModelMatrixDirection(tr.Matrix(), d)
	assert.InDelta(t, 1.0, got[0], 1e-9)
	assert.InDelta(t, 0.0, got[1], 1e-9)
	assert.InDelta(t, 0.0, got[2], 1e-9)
}

func TestTransformRotateZ45(t *testing.T) {
	// sanity check that rotation helpers compose trig correctly
	tr := DefaultTransform()
	tr.Rotation = Vec3{0, 0, 45}
	got := ApplyModelMatrixPoint(tr.Matrix(), Vec3{1, 0, 0})
	expected := 1.0 / math.Sqrt(2)
	assert.InDelta(t, expected, got[0], 1e-9)
	assert.InDelta(t, expected, got[1], 1e-9)
}
