package raytrace

import (
	"math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// directionToEquirectangularRange maps dir onto a UV rectangle whose
// longitude/latitude span is given by range (width, offsetU, height,
// offsetV), all in radians.
func directionToEquirectangularRange(dir vecmath.Vec3, rng vecmath.Vec4) vecmath.Vec2 {
	u := (-math.Atan2(dir[2], dir[0]) - rng[1]) / rng[0]
	v := (math.Acos(dir[1]/dir.Len()) - rng[3]) / rng[2]
	return vecmath.Vec2{u, v}
}

// directionToEquirectangular maps dir to [0,1]^2 over the full sphere
// of directions, matching the UV convention environment maps and
// Sphere.Hit use.
func directionToEquirectangular(dir vecmath.Vec3) vecmath.Vec2 {
	return directionToEquirectangularRange(dir, vecmath.Vec4{-2 * math.Pi, math.Pi, -math.Pi, math.Pi})
}
