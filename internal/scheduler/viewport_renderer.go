package scheduler

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/ishbosamiya/goray/internal/raytrace"
)

// RenderData describes what the viewport wants rendered: its target
// resolution and quality, independent of how many progressive steps it
// takes to get there.
type RenderData struct {
	TargetWidth     int
	TargetHeight    int
	TraceMaxDepth   int
	SamplesPerPixel int
	Camera          *raytrace.Camera
}

type viewportMessageKind int

const (
	viewportMsgRestart viewportMessageKind = iota
	viewportMsgStop
	viewportMsgKillThread
)

type viewportMessage struct {
	kind viewportMessageKind
	data RenderData
}

// ViewportRenderer stages a sequence of increasingly large renders
// through a RenderController so an interactive preview gets a cheap
// low-resolution image almost immediately, then refines it. Restart
// messages received while a refinement sequence is already debouncing
// coalesce into a single restart.
type ViewportRenderer struct {
	controller *RenderController
	messages   chan viewportMessage
	done       chan struct{}
}

// NewViewportRenderer starts the renderer's message-processing
// goroutine, driving controller. Call KillThread to shut it down.
func NewViewportRenderer(controller *RenderController) *ViewportRenderer {
	vr := &ViewportRenderer{
		controller: controller,
		messages:   make(chan viewportMessage, 16),
		done:       make(chan struct{}),
	}
	go vr.run()
	return vr
}

// Restart begins a new progressive render sequence toward data,
// canceling any sequence already in flight.
func (vr *ViewportRenderer) Restart(data RenderData) {
	vr.messages <- viewportMessage{kind: viewportMsgRestart, data: data}
}

// Stop halts the in-flight progressive sequence, if any.
func (vr *ViewportRenderer) Stop() {
	vr.messages <- viewportMessage{kind: viewportMsgStop}
}

// KillThread stops any sequence in flight and shuts the renderer down.
// Blocks until its goroutine has exited.
func (vr *ViewportRenderer) KillThread() {
	vr.messages <- viewportMessage{kind: viewportMsgKillThread}
	<-vr.done
}

// run is the renderer's single message-processing goroutine.
func (vr *ViewportRenderer) run() {
	var jobCancel context.CancelFunc
	var wg sync.WaitGroup

	stopJob := func() {
		if jobCancel != nil {
			jobCancel()
		}
		wg.Wait()
		jobCancel = nil
	}

	for {
		msg, ok := <-vr.messages
		if !ok {
			return
		}
		// Bundle any messages already queued so only the latest wins;
		// a Restart is expensive enough (scene BVH rebuild, a fresh
		// progressive sequence) that rapid-fire edits should not each
		// get their own.
		draining := true
		for draining {
			select {
			case next, ok := <-vr.messages:
				if !ok {
					draining = false
					break
				}
				msg = next
			default:
				draining = false
			}
		}

		switch msg.kind {
		case viewportMsgRestart:
			stopJob()
			ctx, cancel := context.WithCancel(context.Background())
			jobCancel = cancel
			wg.Add(1)
			go func(data RenderData) {
				defer wg.Done()
				runProgressiveJob(ctx, vr.controller, data)
			}(msg.data)
		case viewportMsgStop:
			stopJob()
		case viewportMsgKillThread:
			stopJob()
			close(vr.done)
			return
		}

		// Debounce: give rapid-fire edits a chance to bundle into the
		// next iteration's drain above before processing more.
		time.Sleep(150 * time.Millisecond)
	}
}

// runProgressiveJob drives controller through a sequence of renders at
// a 32px long edge, doubling each step (preserving data's aspect
// ratio), until a step's long edge reaches the target resolution, at
// which point the final step runs at the full target resolution and
// requested sample count.
func runProgressiveJob(ctx context.Context, controller *RenderController, data RenderData) {
	dimensions := func(frame int) (float64, float64) {
		long := 32.0 * math.Pow(2.0, float64(frame))
		targetW, targetH := float64(data.TargetWidth), float64(data.TargetHeight)
		if targetW > targetH {
			return long, long * targetH / targetW
		}
		return long * targetW / targetH, long
	}

	firstPassSamples := data.SamplesPerPixel
	if firstPassSamples > 1 {
		firstPassSamples = 1
	}

	frame := 0
	finalStep := false
	for {
		w, h := dimensions(frame)
		samples := firstPassSamples
		if !finalStep && (w >= float64(data.TargetWidth) || h >= float64(data.TargetHeight)) {
			finalStep = true
		}
		if finalStep {
			w, h = float64(data.TargetWidth), float64(data.TargetHeight)
			samples = data.SamplesPerPixel
		}

		controller.StartRender(raytrace.NewRayTraceParams(int(w), int(h), data.TraceMaxDepth, samples, data.Camera))
		frame++

		for {
			select {
			case <-ctx.Done():
				controller.StopRenderImmediately()
				return
			default:
			}
			if controller.Progress().Fraction() >= 1.0 {
				break
			}
			time.Sleep(5 * time.Millisecond)
		}

		if finalStep {
			return
		}
	}
}
