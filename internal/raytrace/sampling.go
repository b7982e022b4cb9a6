package raytrace

import (
	pkgmath "github.com/ishbosamiya/goray/pkg/math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// randomInUnitSphere draws a uniform point inside the unit ball by
// accept-reject sampling.
func randomInUnitSphere(rng *pkgmath.SeededRNG) vecmath.Vec3 {
	for {
		p := vecmath.Vec3{
			rng.NextFloat(-1, 1),
			rng.NextFloat(-1, 1),
			rng.NextFloat(-1, 1),
		}
		if p.Dot(p) < 1 {
			return p
		}
	}
}

// diffuseBounceDirection returns a direction into the surface (pointing
// away from the hemisphere about normal) suitable for use as wi in a
// Lambertian-style sample: a cosine-weighted-ish direction built by
// jittering the normal with a random point in the unit sphere, then
// negating, matching the convention that the next ray travels along -wi.
func diffuseBounceDirection(normal vecmath.Vec3, rng *pkgmath.SeededRNG) vecmath.Vec3 {
	jittered := normal.Add(randomInUnitSphere(rng))
	if vecmath.NearZero(jittered, 1e-8) {
		jittered = normal
	}
	return jittered.Mul(-1)
}
