// Package image defines the HDR raster buffer the renderer writes into
// and the viewport reads from. It intentionally does not decode or
// encode any file format; that is an external collaborator's job (see
// the batch CLI in cmd/raytrace for one worked example).
package image

import "github.com/ishbosamiya/goray/internal/vecmath"

// Image is a row-major buffer of linear RGB pixels with a generation
// counter bumped on every mutation, so a consumer (e.g. a GPU texture
// upload, or a progressive preview) can cheaply detect staleness by
// comparing generations instead of diffing pixel data.
type Image struct {
	Width, Height int
	Pixels        []vecmath.Vec3
	Generation    uint64
}

// New allocates a black image of the given dimensions.
func New(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]vecmath.Vec3, width*height),
	}
}

func (img *Image) index(x, y int) int { return y*img.Width + x }

// At returns the pixel at (x, y). Out-of-bounds coordinates return the
// zero vector.
func (img *Image) At(x, y int) vecmath.Vec3 {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return vecmath.Vec3{}
	}
	return img.Pixels[img.index(x, y)]
}

// Set writes a pixel and bumps the generation counter.
func (img *Image) Set(x, y int, c vecmath.Vec3) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	img.Pixels[img.index(x, y)] = c
	img.Generation++
}

// CopyFrom replaces this image's dimensions and pixels with src's,
// bumping the generation counter once for the whole copy.
func (img *Image) CopyFrom(src *Image) {
	img.Width = src.Width
	img.Height = src.Height
	img.Pixels = append([]vecmath.Vec3(nil), src.Pixels...)
	img.Generation++
}

// Clone returns a deep copy sharing no backing storage with img.
func (img *Image) Clone() *Image {
	out := &Image{Width: img.Width, Height: img.Height, Generation: img.Generation}
	out.Pixels = append([]vecmath.Vec3(nil), img.Pixels...)
	return out
}

// PixelUV samples the nearest pixel to normalized coordinates (u, v),
// each expected in [0, 1), u increasing rightward and v increasing
// downward. An out-of-range u is wrapped (used for the equirectangular
// environment lookup, where u wraps around the longitude seam); an
// out-of-range v is clamped to [0, 1].
func (img *Image) PixelUV(u, v float64) vecmath.Vec3 {
	if img.Width == 0 || img.Height == 0 {
		return vecmath.Vec3{}
	}
	u = wrap01(u)
	v = clamp01(v)
	x := int(u * float64(img.Width))
	y := int(v * float64(img.Height))
	if x >= img.Width {
		x = img.Width - 1
	}
	if y >= img.Height {
		y = img.Height - 1
	}
	return img.At(x, y)
}

func wrap01(v float64) float64 {
	v = v - float64(int(v))
	if v < 0 {
		v += 1
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
