package raytrace

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ishbosamiya/goray/internal/bvh"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Vertex is one corner of a Mesh face. UV, Normal, Tangent and
// Bitangent are optional: a freshly loaded mesh usually has Pos and,
// if the source provided them, UV and Normal; tangent/bitangent only
// exist once CalculateTangentInfo has run.
type Vertex struct {
	Pos        vecmath.Vec3
	UV         vecmath.Vec2
	Normal     vecmath.Vec3
	Tangent    vecmath.Vec3
	Bitangent  vecmath.Vec3
	HasUV      bool
	HasNormal  bool
	HasTangent bool
}

// Face is an ordered polygon, triangulated on the fly (as a fan from
// Indices[0]) wherever intersection or tangent derivation needs
// triangles.
type Face struct {
	Indices []int
}

// Mesh is an indexed triangle soup: a flat vertex buffer plus faces
// referencing it, with its own BVH over face indices used to
// accelerate Hit.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face

	bvh *bvh.Tree[int]
}

// NewMesh returns a Mesh over the given vertex and face buffers. Call
// BuildBVH before Hit.
func NewMesh(vertices []Vertex, faces []Face) *Mesh {
	return &Mesh{Vertices: vertices, Faces: faces}
}

// BuildBVH (re)builds the mesh's per-face BVH, using the same
// fidelity (treeType 4, axis 8) the original used for mesh-local BVHs.
func (m *Mesh) BuildBVH(epsilon float64) error {
	tree, err := bvh.New[int](len(m.Faces), epsilon, 4, 8)
	if err != nil {
		return fmt.Errorf("raytrace: building mesh bvh: %w", err)
	}
	for i, face := range m.Faces {
		points := make([]vecmath.Vec3, len(face.Indices))
		for j, vi := range face.Indices {
			points[j] = m.Vertices[vi].Pos
		}
		if _, err := tree.Insert(i, points); err != nil {
			return fmt.Errorf("raytrace: inserting face %d into mesh bvh: %w", i, err)
		}
	}
	if err := tree.Balance(); err != nil {
		return fmt.Errorf("raytrace: balancing mesh bvh: %w", err)
	}
	m.bvh = tree
	return nil
}

// Hit intersects ray against the mesh's triangulated faces over
// [tMin, tMax], using the per-face BVH to prune and Möller-Trumbore
// for the per-triangle test. Returns the nearest hit.
func (m *Mesh) Hit(ray vecmath.Ray, tMin, tMax float64) (IntersectInfo, bool) {
	if m.bvh == nil {
		return IntersectInfo{}, false
	}
	hit, ok := m.bvh.RayCast(ray.Origin, ray.Direction, tMin, tMax, func(_, _ mgl64.Vec3, faceIdx int) (bool, float64) {
		t, ok := m.hitFace(ray, faceIdx, tMin, tMax)
		return ok, t
	})
	if !ok {
		return IntersectInfo{}, false
	}
	info, ok := m.hitFaceInfo(ray, hit.Payload, hit.T)
	return info, ok
}

// hitFace is the BVH leaf test: it returns the nearest triangle-fan t
// within a face, without building the full IntersectInfo.
func (m *Mesh) hitFace(ray vecmath.Ray, faceIdx int, tMin, tMax float64) (float64, bool) {
	face := m.Faces[faceIdx]
	best := tMax
	found := false
	v0 := m.Vertices[face.Indices[0]].Pos
	for i := 1; i+1 < len(face.Indices); i++ {
		v1 := m.Vertices[face.Indices[i]].Pos
		v2 := m.Vertices[face.Indices[i+1]].Pos
		if t, _, _, ok := rayTriangle(ray, v0, v1, v2, tMin, best); ok {
			best = t
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}

// hitFaceInfo re-intersects faceIdx at the known hit distance to
// recover barycentric coordinates, then interpolates UV/normal.
func (m *Mesh) hitFaceInfo(ray vecmath.Ray, faceIdx int, knownT float64) (IntersectInfo, bool) {
	face := m.Faces[faceIdx]
	v0i := face.Indices[0]
	for i := 1; i+1 < len(face.Indices); i++ {
		v1i, v2i := face.Indices[i], face.Indices[i+1]
		v0, v1, v2 := m.Vertices[v0i], m.Vertices[v1i], m.Vertices[v2i]
		t, u, v, ok := rayTriangle(ray, v0.Pos, v1.Pos, v2.Pos, knownT-1e-9, knownT+1e-9)
		if !ok {
			continue
		}
		w := 1 - u - v
		point := ray.At(t)

		geomNormal := v1.Pos.Sub(v0.Pos).Cross(v2.Pos.Sub(v0.Pos)).Normalize()
		outward := geomNormal
		if v0.HasNormal && v1.HasNormal && v2.HasNormal {
			outward = v0.Normal.Mul(w).Add(v1.Normal.Mul(u)).Add(v2.Normal.Mul(v)).Normalize()
		}

		info := IntersectInfo{
			T:              t,
			Point:          point,
			Barycentric:    vecmath.Vec3{w, u, v},
			PrimitiveIndex: faceIdx,
		}
		if v0.HasUV && v1.HasUV && v2.HasUV {
			info.UV = v0.UV.Mul(w).Add(v1.UV.Mul(u)).Add(v2.UV.Mul(v))
			info.HasUV = true
		}
		info.SetFaceNormal(ray, outward)
		return info, true
	}
	return IntersectInfo{}, false
}

// rayTriangle implements the Moller-Trumbore ray-triangle intersection
// test, returning the hit distance and the (u, v) barycentric
// coordinates of vertices v1 and v2 (v0's weight is 1-u-v).
func rayTriangle(ray vecmath.Ray, v0, v1, v2 vecmath.Vec3, tMin, tMax float64) (t, u, v float64, ok bool) {
	const epsilon = 1e-12

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u = f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// CalculateTangentInfo derives per-vertex tangent/bitangent vectors
// from each face's positions and UVs, following the standard
// triangle-UV tangent-space construction. Requires every vertex to
// already have a UV.
func (m *Mesh) CalculateTangentInfo() error {
	for fi, face := range m.Faces {
		if len(face.Indices) < 3 {
			return fmt.Errorf("raytrace: face %d has fewer than 3 vertices", fi)
		}
		v0i := face.Indices[0]
		for i := 1; i+1 < len(face.Indices); i++ {
			v1i, v2i := face.Indices[i], face.Indices[i+1]
			v0, v1, v2 := &m.Vertices[v0i], &m.Vertices[v1i], &m.Vertices[v2i]
			if !v0.HasUV || !v1.HasUV || !v2.HasUV {
				return fmt.Errorf("raytrace: face %d has a vertex without a uv", fi)
			}

			edge1 := v1.Pos.Sub(v0.Pos)
			edge2 := v2.Pos.Sub(v0.Pos)
			deltaUV1 := v1.UV.Sub(v0.UV)
			deltaUV2 := v2.UV.Sub(v0.UV)

			det := deltaUV1[0]*deltaUV2[1] - deltaUV2[0]*deltaUV1[1]
			if math.Abs(det) < 1e-12 {
				continue
			}
			f := 1.0 / det

			tangent := edge1.Mul(deltaUV2[1]).Sub(edge2.Mul(deltaUV1[1])).Mul(f)
			bitangent := edge2.Mul(deltaUV1[0]).Sub(edge1.Mul(deltaUV2[0])).Mul(f)

			for _, vtx := range []*Vertex{v0, v1, v2} {
				vtx.Tangent = tangent.Normalize()
				vtx.Bitangent = bitangent.Normalize()
				vtx.HasTangent = true
			}
		}
	}
	return nil
}
