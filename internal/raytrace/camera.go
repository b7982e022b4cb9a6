package raytrace

import (
	"math"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Camera is a thin-lens-free pinhole camera defined by a sensor
// rectangle held focalLength away from origin along -Z.
type Camera struct {
	sensorHeight float64
	sensorWidth  float64
	aspectRatio  float64
	focalLength  float64
	origin       vecmath.Vec3

	horizontal         vecmath.Vec3
	vertical           vecmath.Vec3
	cameraPlaneCenter vecmath.Vec3
}

// NewCamera builds a Camera from its sensor height, aspect ratio,
// focal length and world-space origin.
func NewCamera(sensorHeight, aspectRatio, focalLength float64, origin vecmath.Vec3) *Camera {
	c := &Camera{aspectRatio: aspectRatio, focalLength: focalLength}
	c.ChangeSensorHeight(sensorHeight)
	c.ChangeOrigin(origin)
	return c
}

// ChangeSensorHeight resizes the sensor, keeping the aspect ratio.
// The stored horizontal/vertical basis vectors are halved because
// Camera.GetRay's u,v range over [-1, 1] (OpenGL-style NDC), not
// [-0.5, 0.5].
func (c *Camera) ChangeSensorHeight(sensorHeight float64) {
	halfHeight := sensorHeight / 2.0
	c.sensorHeight = sensorHeight
	c.sensorWidth = sensorHeight * c.aspectRatio
	halfWidth := halfHeight * c.aspectRatio
	c.horizontal = vecmath.Vec3{halfWidth, 0, 0}
	c.vertical = vecmath.Vec3{0, halfHeight, 0}
}

// ChangeSensorWidth resizes the sensor by width, keeping aspect ratio.
func (c *Camera) ChangeSensorWidth(sensorWidth float64) {
	c.ChangeSensorHeight(sensorWidth / c.aspectRatio)
}

// ChangeAspectRatio updates the aspect ratio, keeping sensor height
// fixed and rederiving sensor width.
func (c *Camera) ChangeAspectRatio(aspectRatio float64) {
	c.aspectRatio = aspectRatio
	c.ChangeSensorHeight(c.sensorHeight)
}

// ChangeFocalLength moves the camera plane center to keep it
// focalLength away from origin along -Z.
func (c *Camera) ChangeFocalLength(focalLength float64) {
	c.focalLength = focalLength
	c.cameraPlaneCenter = c.origin.Sub(vecmath.Vec3{0, 0, focalLength})
}

// ChangeOrigin moves the camera, rederiving the camera plane center.
func (c *Camera) ChangeOrigin(origin vecmath.Vec3) {
	c.origin = origin
	c.ChangeFocalLength(c.focalLength)
}

// Origin returns the camera's world-space position.
func (c *Camera) Origin() vecmath.Vec3 { return c.origin }

// GetRay returns the ray through sensor coordinate (u, v), where both
// range over [-1, 1]. The returned direction is unit length.
func (c *Camera) GetRay(u, v float64) vecmath.Ray {
	dir := c.cameraPlaneCenter.Add(c.horizontal.Mul(u)).Add(c.vertical.Mul(v)).Sub(c.origin).Normalize()
	return vecmath.NewRay(c.origin, dir)
}

// FocalLength returns the distance between the camera's origin and
// its sensor plane.
func (c *Camera) FocalLength() float64 {
	return c.cameraPlaneCenter.Sub(c.origin).Len()
}

func (c *Camera) SensorWidth() float64  { return c.sensorWidth }
func (c *Camera) SensorHeight() float64 { return c.sensorHeight }

// focalLengthToFOV converts a focal length and sensor dimension to a
// field of view in radians.
func focalLengthToFOV(focalLength, sensorDimension float64) float64 {
	return 2.0 * math.Atan(sensorDimension/(2.0*focalLength))
}

// FOVHorizontal returns the camera's horizontal field of view in
// radians.
func (c *Camera) FOVHorizontal() float64 {
	return focalLengthToFOV(c.FocalLength(), c.sensorWidth)
}

// FOVVertical returns the camera's vertical field of view in radians.
func (c *Camera) FOVVertical() float64 {
	return focalLengthToFOV(c.FocalLength(), c.sensorHeight)
}
