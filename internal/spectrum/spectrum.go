// Package spectrum implements sparse wavelength-sample spectra used by
// the dispersive BSDFs (Glass/Refraction with wavelength-dependent
// index of refraction) and by the conversion between such spectra and
// sRGB. A Spectrum tracks a handful of discrete wavelengths along a
// single path ("hero wavelength" style), not a dense continuous curve:
// arithmetic combines samples by wavelength, treating any wavelength
// present in one operand but absent from the other as zero.
package spectrum

import (
	"math"
	"sort"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

const wavelengthEps = 1e-6

// Canonical wavelengths (nm) used to round-trip a non-dispersive RGB
// color through the spectral representation without loss: FromSRGB
// stores one sample per channel at these wavelengths, and ToSRGB reads
// them straight back. They sit near the peak response wavelengths of
// the red, green and blue CIE color-matching lobes, so a spectrum
// produced by dispersion sampling (arbitrary wavelengths) still
// converts sensibly via ToCIEXYZ even though it won't hit these exact
// samples.
const (
	WavelengthR = 611.0
	WavelengthG = 549.0
	WavelengthB = 466.0

	MinWavelength = 380.0
	MaxWavelength = 780.0
)

// Sample is a single (wavelength, intensity) pair.
type Sample struct {
	Wavelength float64
	Intensity  float64
}

// Spectrum is an ascending, wavelength-deduplicated list of samples.
type Spectrum struct {
	Samples []Sample
}

// Zero returns the empty spectrum (intensity 0 at every wavelength).
func Zero() Spectrum {
	return Spectrum{}
}

// FromSRGB builds a spectrum that round-trips exactly back through
// ToSRGB: one sample per channel at the canonical RGB wavelengths,
// holding the corresponding linear intensity.
func FromSRGB(c vecmath.Vec3) Spectrum {
	lin := vecmath.SRGBToLinearVec3(c)
	s := Spectrum{}
	s = s.withSample(WavelengthR, lin[0])
	s = s.withSample(WavelengthG, lin[1])
	s = s.withSample(WavelengthB, lin[2])
	return s
}

func (s Spectrum) withSample(wavelength, intensity float64) Spectrum {
	if intensity == 0 {
		return s
	}
	out := Spectrum{Samples: append([]Sample(nil), s.Samples...)}
	out.Samples = append(out.Samples, Sample{Wavelength: wavelength, Intensity: intensity})
	sort.Slice(out.Samples, func(i, j int) bool { return out.Samples[i].Wavelength < out.Samples[j].Wavelength })
	return out
}

// At returns the intensity at wavelength, or 0 if no sample is that
// close (within wavelengthEps).
func (s Spectrum) At(wavelength float64) float64 {
	for _, sm := range s.Samples {
		if math.Abs(sm.Wavelength-wavelength) < wavelengthEps {
			return sm.Intensity
		}
	}
	return 0
}

// ToSRGB reads the canonical RGB-wavelength samples back out and
// re-encodes them as sRGB. Any energy at non-canonical wavelengths
// (e.g. dispersion samples) is ignored by this fast path; use ToCIEXYZ
// for a physically meaningful conversion of a genuinely spectral
// result.
func (s Spectrum) ToSRGB() vecmath.Vec3 {
	lin := vecmath.Vec3{s.At(WavelengthR), s.At(WavelengthG), s.At(WavelengthB)}
	return vecmath.LinearToSRGBVec3(clampNonNegative(lin))
}

func clampNonNegative(v vecmath.Vec3) vecmath.Vec3 {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
	}
	return v
}

// Add merges two spectra, summing intensities at coincident wavelengths.
func (s Spectrum) Add(other Spectrum) Spectrum {
	out := Spectrum{}
	for _, sm := range s.Samples {
		out = out.withSample(sm.Wavelength, sm.Intensity)
	}
	for _, sm := range other.Samples {
		existing := out.At(sm.Wavelength)
		out = out.withoutSample(sm.Wavelength)
		out = out.withSample(sm.Wavelength, existing+sm.Intensity)
	}
	return out
}

func (s Spectrum) withoutSample(wavelength float64) Spectrum {
	out := Spectrum{}
	for _, sm := range s.Samples {
		if math.Abs(sm.Wavelength-wavelength) < wavelengthEps {
			continue
		}
		out.Samples = append(out.Samples, sm)
	}
	return out
}

// Mul multiplies two spectra wavelength-by-wavelength; any wavelength
// present in only one operand contributes zero to the product (the
// absent side is treated as zero intensity there), so the result's
// support is the intersection of the two operands' wavelengths.
func (s Spectrum) Mul(other Spectrum) Spectrum {
	out := Spectrum{}
	for _, sm := range s.Samples {
		o := other.At(sm.Wavelength)
		if o == 0 {
			continue
		}
		out = out.withSample(sm.Wavelength, sm.Intensity*o)
	}
	return out
}

// Scale multiplies every sample's intensity by k.
func (s Spectrum) Scale(k float64) Spectrum {
	out := Spectrum{}
	for _, sm := range s.Samples {
		out = out.withSample(sm.Wavelength, sm.Intensity*k)
	}
	return out
}

// IsZero reports whether the spectrum carries no energy at all.
func (s Spectrum) IsZero() bool {
	return len(s.Samples) == 0
}

// gaussianFit is the two-sided Gaussian lobe used by the Wyman/Sloan/
// Shirley multi-lobe analytic fit to the CIE 1931 2-degree standard
// observer color matching functions.
func gaussianFit(x, alpha, mu, sigma1, sigma2 float64) float64 {
	var sigma float64
	if x < mu {
		sigma = sigma1
	} else {
		sigma = sigma2
	}
	t := (x - mu) / sigma
	return alpha * math.Exp(-0.5*t*t)
}

// CIEXBar, CIEYBar and CIEZBar evaluate the analytic multi-lobe Gaussian
// fit to the CIE 1931 standard observer at wavelength nm (nanometers).
// This avoids shipping a dense tabulated color-matching function while
// staying close (within a few percent) to the tabulated values across
// the visible range.
func CIEXBar(nm float64) float64 {
	return gaussianFit(nm, 1.056, 599.8, 37.9, 31.0) +
		gaussianFit(nm, 0.362, 442.0, 16.0, 26.7) -
		gaussianFit(nm, 0.065, 501.1, 20.4, 26.2)
}

func CIEYBar(nm float64) float64 {
	return gaussianFit(nm, 0.821, 568.8, 46.9, 40.5) +
		gaussianFit(nm, 0.286, 530.9, 16.3, 31.1)
}

func CIEZBar(nm float64) float64 {
	return gaussianFit(nm, 1.217, 437.0, 11.8, 36.0) +
		gaussianFit(nm, 0.681, 459.0, 26.0, 13.8)
}

// yBarIntegral is Σ CIEYBar(λ) over a 1nm grid spanning the visible
// range, used to normalize ToCIEXYZ so that a spectrum carrying equal
// intensity at every wavelength maps to CIE Y ≈ 1.
var yBarIntegral = func() float64 {
	sum := 0.0
	for nm := MinWavelength; nm <= MaxWavelength; nm++ {
		sum += CIEYBar(nm)
	}
	return sum
}()

// ToCIEXYZ converts the tracked wavelength samples to a CIE XYZ
// tristimulus value using the analytic color-matching-function fit.
// This is the physically meaningful conversion path for spectra
// produced by dispersion sampling; it is a discrete estimator (sum over
// tracked wavelengths, not a continuous integral) appropriate for a
// sparse hero-wavelength representation.
func (s Spectrum) ToCIEXYZ() vecmath.Vec3 {
	var xyz vecmath.Vec3
	for _, sm := range s.Samples {
		xyz[0] += sm.Intensity * CIEXBar(sm.Wavelength) / yBarIntegral
		xyz[1] += sm.Intensity * CIEYBar(sm.Wavelength) / yBarIntegral
		xyz[2] += sm.Intensity * CIEZBar(sm.Wavelength) / yBarIntegral
	}
	return xyz
}

// D65Relative approximates the relative spectral power distribution of
// the CIE D65 standard illuminant with a 6504K Planckian-locus blackbody
// curve, normalized to 1.0 at 560nm. D65 has fine structure (solar
// Fraunhofer lines, a UV boost) this blackbody approximation does not
// reproduce. No rendering code calls it.
func D65Relative(nm float64) float64 {
	const h = 6.62607015e-34
	const c = 2.99792458e8
	const kb = 1.380649e-23
	const temp = 6504.0
	wavelengthM := nm * 1e-9
	ref := 560e-9
	planck := func(lambda float64) float64 {
		return (2 * h * c * c) / (math.Pow(lambda, 5) * (math.Exp((h*c)/(lambda*kb*temp)) - 1))
	}
	return planck(wavelengthM) / planck(ref)
}
