package raytrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

func singleTriangleMesh() *Mesh {
	vertices := []Vertex{
		{Pos: vecmath.Vec3{-1, -1, 0}, UV: vecmath.Vec2{0, 0}, HasUV: true},
		{Pos: vecmath.Vec3{1, -1, 0}, UV: vecmath.Vec2{1, 0}, HasUV: true},
		{Pos: vecmath.Vec3{0, 1, 0}, UV: vecmath.Vec2{0.5, 1}, HasUV: true},
	}
	faces := []Face{{Indices: []int{0, 1, 2}}}
	return NewMesh(vertices, faces)
}

func TestMeshHitFrontFace(t *testing.T) {
	mesh := singleTriangleMesh()
	require.NoError(t, mesh.BuildBVH(1e-6))

	// the triangle's geometric (v1-v0)x(v2-v0) normal points toward
	// +z, so a ray arriving from +z opposes it and hits the front face.
	ray := vecmath.NewRay(vecmath.Vec3{0, 0, 5}, vecmath.Vec3{0, 0, -1})
	info, ok := mesh.Hit(ray, 0.001, 1000)
	require.True(t, ok)
	assert.InDelta(t, 5.0, info.T, 1e-9)
	assert.True(t, info.FrontFace)
	assert.True(t, info.HasUV)
}

func TestMeshHitMissesOutsideTriangle(t *testing.T) {
	mesh := singleTriangleMesh()
	require.NoError(t, mesh.BuildBVH(1e-6))

	ray := vecmath.NewRay(vecmath.Vec3{5, 5, -5}, vecmath.Vec3{0, 0, 1})
	_, ok := mesh.Hit(ray, 0.001, 1000)
	assert.False(t, ok)
}

func TestMeshHitBackFaceFlipsNormal(t *testing.T) {
	mesh := singleTriangleMesh()
	require.NoError(t, mesh.BuildBVH(1e-6))

	ray := vecmath.NewRay(vecmath.Vec3{0, 0, -5}, vecmath.Vec3{0, 0, 1})
	info, ok := mesh.Hit(ray, 0.001, 1000)
	require.True(t, ok)
	assert.False(t, info.FrontFace)
	assert.Less(t, info.Normal[2], 0.0)
}

func TestCalculateTangentInfoRequiresUV(t *testing.T) {
	vertices := []Vertex{
		{Pos: vecmath.Vec3{-1, -1, 0}},
		{Pos: vecmath.Vec3{1, -1, 0}},
		{Pos: vecmath.Vec3{0, 1, 0}},
	}
	mesh := NewMesh(vertices, []Face{{Indices: []int{0, 1, 2}}})
	assert.Error(t, mesh.CalculateTangentInfo())
}

func TestCalculateTangentInfoSetsTangents(t *testing.T) {
	mesh := singleTriangleMesh()
	require.NoError(t, mesh.CalculateTangentInfo())
	for _, v := range mesh.Vertices {
		assert.True(t, v.HasTangent)
	}
}
