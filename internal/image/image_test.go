package image

import (
	"testing"

	"github.com/ishbosamiya/goray/internal/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestSetBumpsGeneration(t *testing.T) {
	img := New(4, 4)
	g0 := img.Generation
	img.Set(1, 1, vecmath.Vec3{1, 0, 0})
	assert.Greater(t, img.Generation, g0)
	assert.Equal(t, vecmath.Vec3{1, 0, 0}, img.At(1, 1))
}

func TestOutOfBoundsIsZeroAndNoop(t *testing.T) {
	img := New(2, 2)
	assert.Equal(t, vecmath.Vec3{}, img.At(-1, 0))
	g0 := img.Generation
	img.Set(10, 10, vecmath.Vec3{1, 1, 1})
	assert.Equal(t, g0, img.Generation)
}

func TestCloneIsIndependent(t *testing.T) {
	img := New(2, 2)
	img.Set(0, 0, vecmath.Vec3{1, 1, 1})
	clone := img.Clone()
	clone.Set(0, 0, vecmath.Vec3{0, 0, 0})
	assert.Equal(t, vecmath.Vec3{1, 1, 1}, img.At(0, 0))
	assert.Equal(t, vecmath.Vec3{0, 0, 0}, clone.At(0, 0))
}

func TestPixelUVWrapsU(t *testing.T) {
	img := New(4, 1)
	img.Set(3, 0, vecmath.Vec3{9, 9, 9})
	got := img.PixelUV(-0.01, 0.0)
	assert.Equal(t, vecmath.Vec3{9, 9, 9}, got)
}

func TestPixelUVClampsV(t *testing.T) {
	img := New(1, 4)
	img.Set(0, 3, vecmath.Vec3{5, 5, 5})
	got := img.PixelUV(0, 1.5)
	assert.Equal(t, vecmath.Vec3{5, 5, 5}, got)
}
