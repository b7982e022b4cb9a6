package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ishbosamiya/goray/internal/raytrace"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

func TestViewportRendererReachesTargetResolution(t *testing.T) {
	scene := newTestScene()
	camera := raytrace.NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	controller := NewRenderController(scene, raytrace.DefaultShaderList(), raytrace.NewTextureList(), raytrace.DefaultEnvironment())
	defer controller.KillThread()

	vr := NewViewportRenderer(controller)
	defer vr.KillThread()

	vr.Restart(RenderData{
		TargetWidth:     48,
		TargetHeight:    32,
		TraceMaxDepth:   2,
		SamplesPerPixel: 1,
		Camera:          camera,
	})

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		img, _ := controller.Snapshot()
		if img.Width == 48 && img.Height == 32 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	img, _ := controller.Snapshot()
	t.Fatalf("viewport renderer did not reach target resolution, last image was %dx%d", img.Width, img.Height)
}

func TestViewportRendererStopHaltsSequence(t *testing.T) {
	scene := newTestScene()
	camera := raytrace.NewCamera(2.0, 1.0, 1.0, vecmath.Vec3{0, 0, 0})
	controller := NewRenderController(scene, raytrace.DefaultShaderList(), raytrace.NewTextureList(), raytrace.DefaultEnvironment())
	defer controller.KillThread()

	vr := NewViewportRenderer(controller)
	defer vr.KillThread()

	vr.Restart(RenderData{
		TargetWidth:     512,
		TargetHeight:    512,
		TraceMaxDepth:   4,
		SamplesPerPixel: 64,
		Camera:          camera,
	})
	time.Sleep(20 * time.Millisecond)
	vr.Stop()

	// Give the stop time to land, then assert no target-resolution image
	// ever gets published (512x512 would take far longer than this test
	// budget to reach legitimately).
	time.Sleep(50 * time.Millisecond)
	img, _ := controller.Snapshot()
	assert.False(t, img.Width == 512 && img.Height == 512)
}
