// Package vecmath provides the vector, matrix, and color-space primitives
// shared by every rendering package: rays, transforms, sRGB/linear
// conversion, and CIE XYZ/sRGB conversion. It is a thin domain layer over
// github.com/go-gl/mathgl/mgl64, the double-precision variant of the
// vector/matrix library the engine already depends on.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2, Vec3 and Vec4 are the vector types used throughout the renderer.
// They are aliases rather than wrappers so that mgl64's full method set
// (Add, Sub, Mul, Dot, Cross, Normalize, ...) is available directly.
type (
	Vec2 = mgl64.Vec2
	Vec3 = mgl64.Vec3
	Vec4 = mgl64.Vec4
	Mat3 = mgl64.Mat3
	Mat4 = mgl64.Mat4
)

// Zero3 is the zero vector, useful for comparisons such as total internal
// reflection detection (refracted direction collapses to this).
var Zero3 = Vec3{0, 0, 0}

// NearZero reports whether every component of v has magnitude below eps.
func NearZero(v Vec3, eps float64) bool {
	return math.Abs(v[0]) < eps && math.Abs(v[1]) < eps && math.Abs(v[2]) < eps
}

// Reflect returns v reflected about normal n (n must be unit length).
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends incident direction uv (unit length, pointing toward the
// surface) across a boundary with normal n (unit length, pointing against
// uv) given the ratio of refractive indices etaiOverEtat = eta_i/eta_t.
// It returns the zero vector when the ray undergoes total internal
// reflection.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(n.Dot(uv.Mul(-1)), 1.0)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	k := 1.0 - rOutPerp.Dot(rOutPerp)
	if k < 0 {
		return Zero3
	}
	rOutParallel := n.Mul(-math.Sqrt(k))
	return rOutPerp.Add(rOutParallel)
}

// ApplyModelMatrixPoint transforms a point by m (w=1 in the homogeneous
// product).
func ApplyModelMatrixPoint(m Mat4, p Vec3) Vec3 {
	h := m.Mul4x1(Vec4{p[0], p[1], p[2], 1})
	return Vec3{h[0], h[1], h[2]}
}

// ApplyModelMatrixDirection transforms a direction by m (w=0), leaving
// translation out of the result.
func ApplyModelMatrixDirection(m Mat4, d Vec3) Vec3 {
	h := m.Mul4x1(Vec4{d[0], d[1], d[2], 0})
	return Vec3{h[0], h[1], h[2]}
}

// Ray is a parametric line: point(t) = Origin + t*Direction. Direction is
// not required to be unit length; callers that need distances along the
// ray to correspond to world-space distance must normalize explicitly.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay constructs a Ray from an origin and direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// SRGBToLinear converts a single sRGB-encoded channel value in [0,1] to
// linear light.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a single linear channel value in [0,1] to the
// sRGB-encoded value.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// SRGBToLinearVec3 applies SRGBToLinear component-wise.
func SRGBToLinearVec3(c Vec3) Vec3 {
	return Vec3{SRGBToLinear(c[0]), SRGBToLinear(c[1]), SRGBToLinear(c[2])}
}

// LinearToSRGBVec3 applies LinearToSRGB component-wise.
func LinearToSRGBVec3(c Vec3) Vec3 {
	return Vec3{LinearToSRGB(c[0]), LinearToSRGB(c[1]), LinearToSRGB(c[2])}
}

// xyzToSRGBLinear is the standard linear-sRGB/CIE XYZ (D65) matrix.
var xyzToSRGBLinear = Mat3{
	3.2406, -0.9689, 0.0557,
	-1.5372, 1.8758, -0.2040,
	-0.4986, 0.0415, 1.0570,
}

// srgbLinearToXYZ is the exact inverse of xyzToSRGBLinear, so the two
// conversions round-trip.
var srgbLinearToXYZ = xyzToSRGBLinear.Inv()

// XYZToLinearSRGB converts a CIE XYZ tristimulus value (D65 white point)
// to linear sRGB. The result is not clamped; out-of-gamut colors may have
// negative or >1 components.
func XYZToLinearSRGB(xyz Vec3) Vec3 {
	return xyzToSRGBLinear.Mul3x1(xyz)
}

// LinearSRGBToXYZ converts linear sRGB to CIE XYZ (D65 white point).
func LinearSRGBToXYZ(rgb Vec3) Vec3 {
	return srgbLinearToXYZ.Mul3x1(rgb)
}

// Luminance returns the relative luminance (CIE Y) of a linear sRGB color.
func Luminance(rgb Vec3) float64 {
	return 0.2126*rgb[0] + 0.7152*rgb[1] + 0.0722*rgb[2]
}
