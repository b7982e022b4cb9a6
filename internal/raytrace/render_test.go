package raytrace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

func singleSphereScene(t *testing.T) *Scene {
	t.Helper()
	scene := NewScene()
	sphere := NewSphere(vecmath.Vec3{0, 0, -5}, 1.0)
	obj := NewSphereObject(sphere)
	scene.AddObject(obj)
	require.NoError(t, scene.ApplyModelMatrices())
	require.NoError(t, scene.BuildBVH(0.01))
	return scene
}

func TestRenderSceneFillsEveryPixel(t *testing.T) {
	scene := singleSphereScene(t)
	shaders := DefaultShaderList()
	textures := NewTextureList()
	environment := DefaultEnvironment()
	camera := NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	acc := NewAccumulator(4, 4)

	params := NewRayTraceParams(4, 4, 4, 2, camera)
	RenderScene(context.Background(), params, scene, shaders, textures, environment, acc, 1, nil, nil)

	assert.Equal(t, 2, acc.Samples())
	img := acc.Resolve()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			// every pixel got written at least once per sample; a
			// pixel that never hit anything still resolves to the
			// black default environment, so just check it's finite.
			c := img.At(x, y)
			assert.False(t, isNaNVec3(c), "pixel (%d,%d) is NaN", x, y)
		}
	}
}

func TestRenderSceneReportsProgress(t *testing.T) {
	scene := singleSphereScene(t)
	shaders := DefaultShaderList()
	textures := NewTextureList()
	environment := DefaultEnvironment()
	camera := NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	acc := NewAccumulator(8, 8)

	var lastFraction float64
	params := NewRayTraceParams(8, 8, 4, 3, camera)
	RenderScene(context.Background(), params, scene, shaders, textures, environment, acc, 2, nil, func(fraction float64) {
		lastFraction = fraction
	})

	assert.Equal(t, 1.0, lastFraction)
}

func TestRenderSceneStopsOnCanceledContext(t *testing.T) {
	scene := singleSphereScene(t)
	shaders := DefaultShaderList()
	textures := NewTextureList()
	environment := DefaultEnvironment()
	camera := NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	acc := NewAccumulator(16, 16)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		params := NewRayTraceParams(16, 16, 4, 100, camera)
		RenderScene(ctx, params, scene, shaders, textures, environment, acc, 3, nil, nil)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RenderScene did not honor an already-canceled context")
	}

	assert.Equal(t, 0, acc.Samples())
}

func isNaNVec3(v vecmath.Vec3) bool {
	return v[0] != v[0] || v[1] != v[1] || v[2] != v[2]
}
