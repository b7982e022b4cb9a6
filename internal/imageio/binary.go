// Package imageio is the image loader/writer collaborator: it reads
// and writes the row-major RGB f64 raster the renderer's Accumulator
// resolves into and the HDR environment consumes, plus a PPM encoder
// for quick manual inspection. Header-framed binary decode follows
// gazed-vu/load/wav.go's encoding/binary shape (a fixed struct header
// read with binary.Read, then a bulk payload read).
package imageio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// binaryHeader is the fixed-size prefix of the flat binary image
// format: width and height as little-endian uint32, followed by
// Width*Height*3 little-endian float64 values in row-major RGB order.
type binaryHeader struct {
	Width  uint32
	Height uint32
}

// WriteBinary writes img to w in the flat row-major f64 RGB format.
func WriteBinary(w io.Writer, img *image.Image) error {
	bw := bufio.NewWriter(w)
	header := binaryHeader{Width: uint32(img.Width), Height: uint32(img.Height)}
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("imageio: writing header: %w", err)
	}
	for _, px := range img.Pixels {
		if err := binary.Write(bw, binary.LittleEndian, [3]float64{px[0], px[1], px[2]}); err != nil {
			return fmt.Errorf("imageio: writing pixel data: %w", err)
		}
	}
	return bw.Flush()
}

// ReadBinary reads an image previously written by WriteBinary.
func ReadBinary(r io.Reader) (*image.Image, error) {
	var header binaryHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("imageio: reading header: %w", err)
	}

	img := image.New(int(header.Width), int(header.Height))
	for i := range img.Pixels {
		var px [3]float64
		if err := binary.Read(r, binary.LittleEndian, &px); err != nil {
			return nil, fmt.Errorf("imageio: reading pixel %d: %w", i, err)
		}
		img.Pixels[i] = vecmath.Vec3(px)
	}
	return img, nil
}
