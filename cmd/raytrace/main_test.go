package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScene = `{
	"scene": [
		{"id": 1, "transform": {"location": [0,0,0], "rotation": [0,0,0,1], "scale": [1,1,1]}, "sphere": {"center": [0,0,0], "radius": 1}},
		{"id": 2, "transform": {"location": [0,0,0], "rotation": [0,0,0,1], "scale": [1,1,1]}, "mesh": {"path": "meshes/bunny.obj"}},
		{"id": 3, "transform": {"location": [0,0,0], "rotation": [0,0,0,1], "scale": [1,1,1]}, "mesh": {"path": "meshes/bunny.obj"}}
	],
	"shader_list": [],
	"path_trace_camera": {},
	"environment": {"hdr_path": "  env/studio.bin  ", "strength": 1}
}`

func TestScanMeshPathsDedupesAndSkipsSpheres(t *testing.T) {
	paths, err := scanMeshPaths([]byte(sampleScene))
	require.NoError(t, err)
	assert.Equal(t, []string{"meshes/bunny.obj"}, paths)
}

func TestScanMeshPathsEmptyScene(t *testing.T) {
	paths, err := scanMeshPaths([]byte(`{"scene": []}`))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestScanMeshPathsInvalidJSON(t *testing.T) {
	_, err := scanMeshPaths([]byte(`not json`))
	assert.Error(t, err)
}

func TestScanEnvironmentPathReadsAndTrims(t *testing.T) {
	path := scanEnvironmentPath([]byte(sampleScene))
	assert.Equal(t, "env/studio.bin", path)
}

func TestScanEnvironmentPathMissingEnvironment(t *testing.T) {
	path := scanEnvironmentPath([]byte(`{"scene": []}`))
	assert.Equal(t, "", path)
}
