package raytrace

import (
	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Accumulator sums per-pixel sample contributions across a progressive
// render. Resolve divides by the sample count to produce a displayable
// Image without mutating the running sum, so a render can keep going
// after a viewport snapshot.
type Accumulator struct {
	width, height int
	sum           []vecmath.Vec3
	samples       int
}

// NewAccumulator returns a zeroed accumulator for a width x height
// image.
func NewAccumulator(width, height int) *Accumulator {
	return &Accumulator{width: width, height: height, sum: make([]vecmath.Vec3, width*height)}
}

// Add accumulates color into pixel (x, y). Out-of-bounds coordinates
// are ignored.
func (a *Accumulator) Add(x, y int, color vecmath.Vec3) {
	if x < 0 || x >= a.width || y < 0 || y >= a.height {
		return
	}
	idx := y*a.width + x
	a.sum[idx] = a.sum[idx].Add(color)
}

// FinishSample marks one full pass over every pixel as complete,
// advancing the divisor Resolve uses.
func (a *Accumulator) FinishSample() {
	a.samples++
}

// Samples reports how many complete passes have been accumulated.
func (a *Accumulator) Samples() int {
	return a.samples
}

// Resolve returns the averaged image (sum / samples). If no samples
// have completed yet, returns a black image of the same dimensions.
func (a *Accumulator) Resolve() *image.Image {
	img := image.New(a.width, a.height)
	if a.samples == 0 {
		return img
	}
	inv := 1.0 / float64(a.samples)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			idx := y*a.width + x
			img.Set(x, y, a.sum[idx].Mul(inv))
		}
	}
	return img
}
