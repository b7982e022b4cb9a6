package raytrace

import (
	"fmt"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Object wraps a geometric primitive (Sphere or Mesh) with the
// transform, shader and stable ID a Scene needs. Exactly one of
// sphere/mesh is set.
type Object struct {
	ID        ObjectID
	Transform vecmath.Transform
	ShaderID  ShaderID
	HasShader bool

	sphere *Sphere
	mesh   *Mesh

	// modelApplied tracks whether Transform has been baked into the
	// primitive's local data (see ApplyModelMatrix/UnapplyModelMatrix).
	modelApplied bool
}

// NewSphereObject wraps sphere as an Object.
func NewSphereObject(sphere *Sphere) *Object {
	return &Object{sphere: sphere, Transform: vecmath.DefaultTransform()}
}

// NewMeshObject wraps mesh as an Object.
func NewMeshObject(mesh *Mesh) *Object {
	return &Object{mesh: mesh, Transform: vecmath.DefaultTransform()}
}

// IsSphere reports whether this Object wraps a Sphere.
func (o *Object) IsSphere() bool { return o.sphere != nil }

// IsMesh reports whether this Object wraps a Mesh.
func (o *Object) IsMesh() bool { return o.mesh != nil }

// Sphere returns the wrapped Sphere, or nil if this Object is a Mesh.
func (o *Object) Sphere() *Sphere { return o.sphere }

// Mesh returns the wrapped Mesh, or nil if this Object is a Sphere.
func (o *Object) Mesh() *Mesh { return o.mesh }

// ApplyModelMatrix bakes Transform into the wrapped primitive's
// stored geometry (sphere center, mesh vertex positions/normals),
// moving it from local into world space. It is an error to call this
// twice without an intervening UnapplyModelMatrix.
func (o *Object) ApplyModelMatrix() error {
	if o.modelApplied {
		return fmt.Errorf("raytrace: object %d already has its model matrix applied", o.ID)
	}
	m := o.Transform.Matrix()
	switch {
	case o.sphere != nil:
		o.sphere.Center = vecmath.ApplyModelMatrixPoint(m, o.sphere.Center)
	case o.mesh != nil:
		for i := range o.mesh.Vertices {
			v := &o.mesh.Vertices[i]
			v.Pos = vecmath.ApplyModelMatrixPoint(m, v.Pos)
			if v.HasNormal {
				v.Normal = vecmath.ApplyModelMatrixDirection(m, v.Normal).Normalize()
			}
		}
	}
	o.modelApplied = true
	return nil
}

// UnapplyModelMatrix reverses ApplyModelMatrix, restoring local space.
func (o *Object) UnapplyModelMatrix() error {
	if !o.modelApplied {
		return fmt.Errorf("raytrace: object %d does not have its model matrix applied", o.ID)
	}
	m := o.Transform.InverseMatrix()
	switch {
	case o.sphere != nil:
		o.sphere.Center = vecmath.ApplyModelMatrixPoint(m, o.sphere.Center)
	case o.mesh != nil:
		for i := range o.mesh.Vertices {
			v := &o.mesh.Vertices[i]
			v.Pos = vecmath.ApplyModelMatrixPoint(m, v.Pos)
			if v.HasNormal {
				v.Normal = vecmath.ApplyModelMatrixDirection(m, v.Normal).Normalize()
			}
		}
	}
	o.modelApplied = false
	return nil
}

// Hit intersects ray against whichever primitive this Object wraps,
// assuming the primitive is currently in the same space as ray
// (world space, after ApplyModelMatrix).
func (o *Object) Hit(ray vecmath.Ray, tMin, tMax float64) (IntersectInfo, bool) {
	var info IntersectInfo
	var ok bool
	switch {
	case o.sphere != nil:
		info, ok = o.sphere.Hit(ray, tMin, tMax)
	case o.mesh != nil:
		info, ok = o.mesh.Hit(ray, tMin, tMax)
	default:
		return IntersectInfo{}, false
	}
	if !ok {
		return IntersectInfo{}, false
	}
	info.ObjectID = o.ID
	if o.HasShader {
		info.HasShader = true
		info.ShaderID = o.ShaderID
	}
	return info, true
}

// WorldBounds returns the object's axis-aligned world-space bounding
// points, used to seed the scene's top-level BVH. Assumes the
// primitive is currently in world space.
func (o *Object) WorldBounds() []vecmath.Vec3 {
	switch {
	case o.sphere != nil:
		r := o.sphere.Radius
		c := o.sphere.Center
		return []vecmath.Vec3{
			c.Add(vecmath.Vec3{-r, -r, -r}),
			c.Add(vecmath.Vec3{r, r, r}),
		}
	case o.mesh != nil:
		points := make([]vecmath.Vec3, len(o.mesh.Vertices))
		for i, v := range o.mesh.Vertices {
			points[i] = v.Pos
		}
		return points
	default:
		return nil
	}
}
