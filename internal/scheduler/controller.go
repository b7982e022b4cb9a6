package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ishbosamiya/goray/internal/diag"
	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/raytrace"
)

type messageKind int

const (
	msgStartRender messageKind = iota
	msgFinishSampleAndStopRender
	msgStopRenderImmediately
	msgKillThread
	msgFinishAndKillThread
)

type controllerMessage struct {
	kind   messageKind
	params raytrace.RayTraceParams
}

// RenderController owns exactly one in-flight raytrace.RenderScene call
// at a time and publishes its progressive result. It is the Go
// equivalent of a render thread driven by a message queue: callers send
// commands, a single goroutine processes them and starts/stops the
// actual sampler.
type RenderController struct {
	scene       *raytrace.Scene
	shaders     *raytrace.ShaderList
	textures    *raytrace.TextureList
	environment *raytrace.Environment

	progress *Progress

	messages chan controllerMessage
	done     chan struct{}

	mu      sync.RWMutex
	image   *image.Image
	imageID uint64
}

// NewRenderController starts the controller's message-processing
// goroutine and returns immediately; call KillThread to shut it down.
func NewRenderController(scene *raytrace.Scene, shaders *raytrace.ShaderList, textures *raytrace.TextureList, environment *raytrace.Environment) *RenderController {
	c := &RenderController{
		scene:       scene,
		shaders:     shaders,
		textures:    textures,
		environment: environment,
		progress:    NewProgress(),
		messages:    make(chan controllerMessage),
		done:        make(chan struct{}),
		image:       image.New(1, 1),
	}
	go c.run()
	return c
}

// StartRender stops any render in flight and starts a new one with
// params. Returns immediately; the render proceeds on its own
// goroutine.
func (c *RenderController) StartRender(params raytrace.RayTraceParams) {
	c.messages <- controllerMessage{kind: msgStartRender, params: params}
}

// FinishSampleAndStopRender soft-stops: the current sample pass runs to
// completion, then the render halts.
func (c *RenderController) FinishSampleAndStopRender() {
	c.messages <- controllerMessage{kind: msgFinishSampleAndStopRender}
}

// StopRenderImmediately hard-stops: worker goroutines abort mid-pass at
// row granularity. Progress is marked stopped, not 100%.
func (c *RenderController) StopRenderImmediately() {
	c.messages <- controllerMessage{kind: msgStopRenderImmediately}
}

// KillThread stops any render immediately and shuts the controller
// down. Blocks until the controller goroutine has exited.
func (c *RenderController) KillThread() {
	c.messages <- controllerMessage{kind: msgKillThread}
	<-c.done
}

// FinishAndKillThread soft-stops any render in flight, then shuts the
// controller down. Blocks until the controller goroutine has exited.
func (c *RenderController) FinishAndKillThread() {
	c.messages <- controllerMessage{kind: msgFinishAndKillThread}
	<-c.done
}

// Progress returns the controller's shared progress tracker.
func (c *RenderController) Progress() *Progress {
	return c.progress
}

// Snapshot returns the most recently published image and its strictly
// increasing id. id is 0 before the first sample pass of any render has
// completed.
func (c *RenderController) Snapshot() (*image.Image, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.image, c.imageID
}

func (c *RenderController) publish(img *image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = img
	c.imageID++
}

// run is the controller's single message-processing goroutine. Only it
// touches cancel/wg, so neither needs its own lock.
func (c *RenderController) run() {
	var cancel context.CancelFunc
	var wg sync.WaitGroup
	var softStop atomic.Bool

	stopJoin := func() {
		if cancel != nil {
			cancel()
		}
		wg.Wait()
		cancel = nil
	}

	for msg := range c.messages {
		switch msg.kind {
		case msgStartRender:
			stopJoin()

			ctx, cancelFn := context.WithCancel(context.Background())
			cancel = cancelFn
			softStop.Store(false)

			if err := c.scene.ApplyModelMatrices(); err != nil {
				diag.Warnf("Scheduler", "applying model matrices: %v", err)
				cancelFn()
				cancel = nil
				continue
			}
			if c.scene.BVHDirty() {
				if err := c.scene.BuildBVH(0.01); err != nil {
					diag.Warnf("Scheduler", "building scene bvh: %v", err)
					cancelFn()
					cancel = nil
					continue
				}
			}

			c.progress.Reset()
			wg.Add(1)
			go func(ctx context.Context, params raytrace.RayTraceParams) {
				defer wg.Done()
				c.sample(ctx, params, softStop.Load)
			}(ctx, msg.params)

		case msgFinishSampleAndStopRender:
			softStop.Store(true)
			wg.Wait()
			cancel = nil
			c.progress.Stop()

		case msgStopRenderImmediately:
			stopJoin()
			c.progress.Stop()

		case msgKillThread:
			stopJoin()
			close(c.done)
			return

		case msgFinishAndKillThread:
			softStop.Store(true)
			wg.Wait()
			cancel = nil
			c.progress.Stop()
			close(c.done)
			return
		}
	}
}

// sample runs one raytrace.RenderScene call to completion or
// cancellation, publishing the accumulator after every sample pass and
// unapplying the scene's model matrices when done.
func (c *RenderController) sample(ctx context.Context, params raytrace.RayTraceParams, softStop func() bool) {
	defer func() {
		if err := c.scene.UnapplyModelMatrices(); err != nil {
			diag.Warnf("Scheduler", "unapplying model matrices: %v", err)
		}
	}()

	acc := raytrace.NewAccumulator(params.Width, params.Height)
	seed := time.Now().UnixNano()

	// Progress is also reported mid-pass; only a report that follows a
	// newly completed pass publishes the accumulator.
	published := 0
	raytrace.RenderScene(ctx, params, c.scene, c.shaders, c.textures, c.environment, acc, seed, softStop, func(fraction float64) {
		if n := acc.Samples(); n > published {
			published = n
			c.publish(acc.Resolve())
		}
		c.progress.Set(fraction)
	})
}
