package raytrace

import (
	"context"
	"runtime"
	"sync"
	"time"

	pkgmath "github.com/ishbosamiya/goray/pkg/math"
)

// RayTraceParams bundles the fixed inputs of a render: what to render
// (width, height, camera), how hard to work at it (trace depth, samples
// per pixel).
type RayTraceParams struct {
	Width           int
	Height          int
	TraceMaxDepth   int
	SamplesPerPixel int
	Camera          *Camera
}

// NewRayTraceParams returns a RayTraceParams with the given settings.
func NewRayTraceParams(width, height, traceMaxDepth, samplesPerPixel int, camera *Camera) RayTraceParams {
	return RayTraceParams{
		Width:           width,
		Height:          height,
		TraceMaxDepth:   traceMaxDepth,
		SamplesPerPixel: samplesPerPixel,
		Camera:          camera,
	}
}

// ProgressFunc is called with a value in [0, 1] as a render advances.
// It is invoked from worker goroutines and must not block.
type ProgressFunc func(fraction float64)

// RenderScene traces params.SamplesPerPixel full passes over the image
// into acc. ctx is the hard stop: canceling it aborts a pass mid-flight,
// at row granularity. stopAfterSample, if non-nil, is polled only at
// pass boundaries and is the soft stop: the in-flight pass always runs
// to completion before it takes effect. Either stop leaves the samples
// already folded into acc untouched.
//
// scene must already have BuildBVH called with its model matrices
// applied; RenderScene does not mutate scene.
func RenderScene(ctx context.Context, params RayTraceParams, scene *Scene, shaders *ShaderList, textures *TextureList, environment *Environment, acc *Accumulator, seed int64, stopAfterSample func() bool, progress ProgressFunc) {
	totalPixels := params.Width * params.Height
	if totalPixels == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > totalPixels {
		workers = totalPixels
	}
	if workers < 1 {
		workers = 1
	}

	lastReport := time.Now()
	var reportMu sync.Mutex
	reportProgress := func(done, total int) {
		if progress == nil {
			return
		}
		reportMu.Lock()
		defer reportMu.Unlock()
		if time.Since(lastReport) < 30*time.Millisecond {
			return
		}
		lastReport = time.Now()
		progress(float64(done) / float64(total))
	}

	for sampleIdx := 0; sampleIdx < params.SamplesPerPixel; sampleIdx++ {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if stopAfterSample != nil && stopAfterSample() {
			return
		}

		rows := make(chan int, params.Height)
		for y := 0; y < params.Height; y++ {
			rows <- y
		}
		close(rows)

		var processed int64
		var processedMu sync.Mutex

		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(workerIdx int) {
				defer wg.Done()
				rng := pkgmath.NewSeededRNG(seed + int64(sampleIdx)*int64(workers) + int64(workerIdx))
				for y := range rows {
					select {
					case <-ctx.Done():
						return
					default:
					}
					renderRow(y, params, scene, shaders, textures, environment, acc, rng)

					processedMu.Lock()
					processed += int64(params.Width)
					done := processed
					processedMu.Unlock()
					reportProgress(
						sampleIdx*totalPixels+int(done),
						params.SamplesPerPixel*totalPixels,
					)
				}
			}(w)
		}
		wg.Wait()

		select {
		case <-ctx.Done():
			return
		default:
		}

		acc.FinishSample()
		if progress != nil {
			progress(float64(sampleIdx+1) / float64(params.SamplesPerPixel))
		}
	}
}

// renderRow traces every pixel in image row y (0 at the top) and
// accumulates the result into acc. The camera's v coordinate is taken
// from the flipped, bottom-up row index, OpenGL style.
func renderRow(y int, params RayTraceParams, scene *Scene, shaders *ShaderList, textures *TextureList, environment *Environment, acc *Accumulator, rng *pkgmath.SeededRNG) {
	flippedY := params.Height - y - 1
	for x := 0; x < params.Width; x++ {
		u := (((float64(x) + rng.Next()) / float64(params.Width-1)) - 0.5) * 2.0
		v := (((float64(flippedY) + rng.Next()) / float64(params.Height-1)) - 0.5) * 2.0

		ray := params.Camera.GetRay(u, v)
		color, _ := traceRay(ray, scene, params.TraceMaxDepth, shaders, textures, environment, NewMediumsWithAir(), nil, rng)
		acc.Add(x, y, color)
	}
}
