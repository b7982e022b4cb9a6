package meshio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

const triangleOBJ = `
o triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
vn 0.0 0.0 1.0
vt 0.0 0.0
vt 1.0 0.0
vt 0.0 1.0
f 1/1/1 2/2/1 3/3/1
`

func TestLoadOBJParsesTriangle(t *testing.T) {
	mesh, err := LoadOBJ(strings.NewReader(triangleOBJ))
	require.NoError(t, err)

	require.Len(t, mesh.Faces, 1)
	require.Len(t, mesh.Faces[0].Indices, 3)
	require.Len(t, mesh.Vertices, 3)

	for _, idx := range mesh.Faces[0].Indices {
		v := mesh.Vertices[idx]
		assert.True(t, v.HasUV)
		assert.True(t, v.HasNormal)
		assert.Equal(t, vecmath.Vec3{0, 0, 1}, v.Normal)
	}
	assert.Equal(t, vecmath.Vec3{0, 0, 0}, mesh.Vertices[0].Pos)
	assert.Equal(t, vecmath.Vec3{1, 0, 0}, mesh.Vertices[1].Pos)
	assert.Equal(t, vecmath.Vec3{0, 1, 0}, mesh.Vertices[2].Pos)
}

func TestLoadOBJWithoutUVOrNormal(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := LoadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, mesh.Vertices, 3)
	for _, v := range mesh.Vertices {
		assert.False(t, v.HasUV)
		assert.False(t, v.HasNormal)
	}
}

func TestLoadOBJRejectsEmptyInput(t *testing.T) {
	_, err := LoadOBJ(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadOBJRejectsOutOfRangeIndex(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 9
`
	_, err := LoadOBJ(strings.NewReader(src))
	assert.Error(t, err)
}

func TestLoadOBJSupportsQuadFaces(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	mesh, err := LoadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, mesh.Faces, 1)
	assert.Len(t, mesh.Faces[0].Indices, 4)
}
