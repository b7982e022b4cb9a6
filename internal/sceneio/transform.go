// Package sceneio decodes and encodes the JSON scene file format: the
// on-disk representation of a Scene, its ShaderList, camera and
// Environment. It does not decode mesh files or HDR images - those are
// external collaborators (a mesh loader and an image loader) that the
// caller wires in separately; sceneio only carries the file paths and
// stitches the decoded results into raytrace types.
package sceneio

import "github.com/ishbosamiya/goray/internal/vecmath"

// TransformFile is the on-disk form of a vecmath.Transform.
type TransformFile struct {
	Location [3]float64 `json:"location"`
	Rotation [3]float64 `json:"rotation"`
	Scale    [3]float64 `json:"scale"`
}

func transformToFile(t vecmath.Transform) TransformFile {
	return TransformFile{
		Location: [3]float64{t.Location[0], t.Location[1], t.Location[2]},
		Rotation: [3]float64{t.Rotation[0], t.Rotation[1], t.Rotation[2]},
		Scale:    [3]float64{t.Scale[0], t.Scale[1], t.Scale[2]},
	}
}

func (f TransformFile) toTransform() vecmath.Transform {
	return vecmath.Transform{
		Location: vecmath.Vec3{f.Location[0], f.Location[1], f.Location[2]},
		Rotation: vecmath.Vec3{f.Rotation[0], f.Rotation[1], f.Rotation[2]},
		Scale:    vecmath.Vec3{f.Scale[0], f.Scale[1], f.Scale[2]},
	}
}

func vec3ToFile(v vecmath.Vec3) [3]float64 {
	return [3]float64{v[0], v[1], v[2]}
}

func fileToVec3(v [3]float64) vecmath.Vec3 {
	return vecmath.Vec3{v[0], v[1], v[2]}
}
