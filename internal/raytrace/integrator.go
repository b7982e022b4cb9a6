package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// defaultBSDF is used whenever a hit references a shader that no
// longer exists in the ShaderList (e.g. deleted after the object was
// assigned it), so a render never aborts over a dangling reference.
var defaultBSDF BSDF = NewLambert(vecmath.Vec3{0, 0, 0})

// ScatterHitData is the continuation of a traced path: the color the
// bounce attenuates by, and the next ray to trace.
type ScatterHitData struct {
	Color        vecmath.Vec3
	NextRay      vecmath.Ray
	SamplingType SamplingType
}

// EmissionHitData is the light a hit point emits directly toward the
// viewer, independent of any further bounce.
type EmissionHitData struct {
	Color vecmath.Vec3
}

// shadeHit draws a BSDF sample at info and evaluates its color,
// returning the scattering continuation (if any) and the emitted
// light (if any). Either, both, or neither may be present.
func shadeHit(ray vecmath.Ray, info *IntersectInfo, shaders *ShaderList, textures *TextureList, mediums *Mediums, wavelengths []float64, rng *pkgmath.SeededRNG) (*ScatterHitData, *EmissionHitData) {
	bsdf := defaultBSDF
	if info.HasShader {
		if shader, ok := shaders.Get(info.ShaderID); ok {
			bsdf = shader.BSDF
		}
	}

	wo := ray.Direction.Mul(-1).Normalize()

	var scatter *ScatterHitData
	if sample, ok := bsdf.Sample(wo, mediums, info, AllSamplingTypes, wavelengths, rng); ok {
		wi := sample.Wi.Normalize()
		color := bsdf.Eval(wi, wo, info, textures)
		nextRayDir := wi.Mul(-1)
		scatter = &ScatterHitData{
			Color:        color,
			NextRay:      vecmath.NewRay(info.Point, nextRayDir),
			SamplingType: sample.SamplingType,
		}
	}

	var emission *EmissionHitData
	if color, ok := bsdf.Emission(wo, mediums, info, textures); ok {
		emission = &EmissionHitData{Color: color}
	}

	return scatter, emission
}

// traceRay recursively walks ray through scene up to depth bounces,
// returning the accumulated radiance and a diagnostic record of every
// segment visited. mediums is the dielectric stack carried along this
// path; wavelengths is the path's tracked hero wavelengths, consulted
// only by dispersive BSDFs (RenderScene always passes nil).
func traceRay(ray vecmath.Ray, scene *Scene, depth int, shaders *ShaderList, textures *TextureList, environment *Environment, mediums *Mediums, wavelengths []float64, rng *pkgmath.SeededRNG) (vecmath.Vec3, TraversalInfo) {
	if depth == 0 {
		return vecmath.Vec3{}, NewTraversalInfo()
	}

	traversal := NewTraversalInfo()

	info, hit := scene.Hit(ray, 0.01, 1000.0)
	if !hit {
		final := environment.Shade(ray)
		traversal.AddRay(SingleRayInfo{Ray: ray, HasHit: false, Color: final})
		return final, traversal
	}

	scatter, emission := shadeHit(ray, &info, shaders, textures, mediums, wavelengths, rng)

	var scatterIntensity vecmath.Vec3
	subTraversal := NewTraversalInfo()
	if scatter != nil {
		var traced vecmath.Vec3
		traced, subTraversal = traceRay(scatter.NextRay, scene, depth-1, shaders, textures, environment, mediums, wavelengths, rng)
		scatterIntensity = vecmath.Vec3{
			scatter.Color[0] * traced[0],
			scatter.Color[1] * traced[1],
			scatter.Color[2] * traced[2],
		}
	}

	var emissionIntensity vecmath.Vec3
	if emission != nil {
		emissionIntensity = emission.Color
	}

	result := emissionIntensity.Add(scatterIntensity)
	traversal.AddRay(SingleRayInfo{
		Ray:    ray,
		Point:  info.Point,
		HasHit: true,
		Color:  result,
		Normal: info.Normal,
	})
	traversal.Append(subTraversal)

	return result, traversal
}
