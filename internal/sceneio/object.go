package sceneio

import (
	"fmt"

	"github.com/ishbosamiya/goray/internal/raytrace"
)

// sphereFile is the inline encoding of a Sphere: cheap enough that
// there is no reason to push it out to its own file the way meshes
// are.
type sphereFile struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// meshFile references an external mesh file by path; the mesh itself
// is decoded by the caller's mesh loader and handed to Scene via the
// meshes argument of Unmarshal, keyed by this same path.
type meshFile struct {
	Path string `json:"path"`
}

// objectFile is the tagged union of a Sphere or Mesh object plus the
// placement, shader binding and stable id a Scene needs.
type objectFile struct {
	ID        uint64        `json:"id"`
	Transform TransformFile `json:"transform"`
	ShaderID  *uint64       `json:"shader_id,omitempty"`

	Sphere *sphereFile `json:"sphere,omitempty"`
	Mesh   *meshFile   `json:"mesh,omitempty"`
}

// encodeObject flattens o into its on-disk form. meshPath is the
// source path for a mesh object, supplied by the caller's own
// bookkeeping (sceneio does not track where a Mesh came from once it
// is in memory); it is ignored for a sphere object.
func encodeObject(o *raytrace.Object, meshPath string) objectFile {
	f := objectFile{
		ID:        uint64(o.ID),
		Transform: transformToFile(o.Transform),
	}
	if o.HasShader {
		id := uint64(o.ShaderID)
		f.ShaderID = &id
	}

	switch {
	case o.IsSphere():
		s := o.Sphere()
		f.Sphere = &sphereFile{Center: vec3ToFile(s.Center), Radius: s.Radius}
	case o.IsMesh():
		f.Mesh = &meshFile{Path: meshPath}
	}
	return f
}

// decodeObject builds the Object named by f. meshes supplies the
// already-decoded Mesh for every mesh object, keyed by the path
// stored in the scene file; decodeObject does no file I/O itself.
func decodeObject(f objectFile, meshes map[string]*raytrace.Mesh) (*raytrace.Object, error) {
	var obj *raytrace.Object
	switch {
	case f.Sphere != nil:
		obj = raytrace.NewSphereObject(raytrace.NewSphere(fileToVec3(f.Sphere.Center), f.Sphere.Radius))
	case f.Mesh != nil:
		mesh, ok := meshes[f.Mesh.Path]
		if !ok {
			return nil, fmt.Errorf("sceneio: no decoded mesh supplied for %q", f.Mesh.Path)
		}
		obj = raytrace.NewMeshObject(mesh)
	default:
		return nil, fmt.Errorf("sceneio: object %d has neither sphere nor mesh", f.ID)
	}

	obj.ID = raytrace.ObjectID(f.ID)
	obj.Transform = f.Transform.toTransform()
	if f.ShaderID != nil {
		obj.HasShader = true
		obj.ShaderID = raytrace.ShaderID(*f.ShaderID)
	}
	return obj, nil
}
