package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishbosamiya/goray/internal/raytrace"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

func newTestScene() *raytrace.Scene {
	scene := raytrace.NewScene()
	sphere := raytrace.NewSphere(vecmath.Vec3{0, 0, -5}, 1.0)
	scene.AddObject(raytrace.NewSphereObject(sphere))
	return scene
}

func waitForProgress(t *testing.T, p *Progress, fraction float64, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if p.Fraction() >= fraction {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("progress did not reach %v within %v (last seen %v)", fraction, timeout, p.Fraction())
}

func TestRenderControllerRunsToCompletion(t *testing.T) {
	scene := newTestScene()
	camera := raytrace.NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	controller := NewRenderController(scene, raytrace.DefaultShaderList(), raytrace.NewTextureList(), raytrace.DefaultEnvironment())
	defer controller.KillThread()

	controller.StartRender(raytrace.NewRayTraceParams(8, 8, 4, 3, camera))
	waitForProgress(t, controller.Progress(), 1.0, 2*time.Second)

	img, id := controller.Snapshot()
	require.NotNil(t, img)
	assert.Greater(t, id, uint64(0))
}

func TestRenderControllerStopRenderImmediatelyHaltsMidRender(t *testing.T) {
	scene := newTestScene()
	camera := raytrace.NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	controller := NewRenderController(scene, raytrace.DefaultShaderList(), raytrace.NewTextureList(), raytrace.DefaultEnvironment())
	defer controller.KillThread()

	controller.StartRender(raytrace.NewRayTraceParams(64, 64, 6, 500, camera))
	time.Sleep(10 * time.Millisecond)
	controller.StopRenderImmediately()

	assert.Less(t, controller.Progress().Fraction(), 1.0)
}

func TestRenderControllerStartRenderSupersedesPreviousRender(t *testing.T) {
	scene := newTestScene()
	camera := raytrace.NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	controller := NewRenderController(scene, raytrace.DefaultShaderList(), raytrace.NewTextureList(), raytrace.DefaultEnvironment())
	defer controller.KillThread()

	controller.StartRender(raytrace.NewRayTraceParams(64, 64, 6, 500, camera))
	time.Sleep(5 * time.Millisecond)
	controller.StartRender(raytrace.NewRayTraceParams(4, 4, 2, 1, camera))

	waitForProgress(t, controller.Progress(), 1.0, 2*time.Second)
	img, _ := controller.Snapshot()
	assert.Equal(t, 4, img.Width)
}

func TestRenderControllerKillThreadStopsGoroutine(t *testing.T) {
	scene := newTestScene()
	camera := raytrace.NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	controller := NewRenderController(scene, raytrace.DefaultShaderList(), raytrace.NewTextureList(), raytrace.DefaultEnvironment())

	controller.StartRender(raytrace.NewRayTraceParams(4, 4, 2, 1, camera))
	controller.KillThread()
}
