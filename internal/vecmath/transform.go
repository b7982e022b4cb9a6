package vecmath

import "math"

// Transform is a translate-rotate-scale object placement. Rotation is
// stored as Euler angles in degrees about the X, Y, then Z axes.
type Transform struct {
	Location Vec3 // meters
	Rotation Vec3 // degrees, applied X then Y then Z
	Scale    Vec3
}

// DefaultTransform returns the identity placement: zero location and
// rotation, unit scale.
func DefaultTransform() Transform {
	return Transform{
		Location: Vec3{0, 0, 0},
		Rotation: Vec3{0, 0, 0},
		Scale:    Vec3{1, 1, 1},
	}
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// Matrix composes the placement as T * Rz * Ry * Rx * S: scale first,
// then rotate about X, then Y, then Z, then translate.
func (t Transform) Matrix() Mat4 {
	translate := mat4Translate(t.Location)
	rx := mat4RotateX(deg2rad(t.Rotation[0]))
	ry := mat4RotateY(deg2rad(t.Rotation[1]))
	rz := mat4RotateZ(deg2rad(t.Rotation[2]))
	scale := mat4Scale(t.Scale)
	return translate.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(scale)
}

// InverseMatrix returns the inverse of Matrix(), used to bake a transform
// out of baked world-space data (e.g. unapplying a model matrix).
func (t Transform) InverseMatrix() Mat4 {
	return t.Matrix().Inv()
}

func mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = v[0], v[1], v[2]
	return m
}

func mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0], m[5], m[10] = v[0], v[1], v[2]
	return m
}

func mat4RotateX(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	m := Mat4Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

func mat4RotateY(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	m := Mat4Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

func mat4RotateZ(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	m := Mat4Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Mat4Identity returns the 4x4 identity matrix in mgl64's column-major
// 16-element layout.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
