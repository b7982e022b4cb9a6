package imageio

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// WritePPM encodes img as a binary (P6) PPM, tone mapped by a plain
// clamp to [0, 1] and gamma-encoded to sRGB, for quick manual
// inspection with any image viewer. It is not meant to be a faithful
// HDR encoder - see WriteBinary for that.
func WritePPM(w io.Writer, img *image.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("imageio: writing ppm header: %w", err)
	}

	for _, px := range img.Pixels {
		rgb := [3]byte{
			toSRGBByte(px[0]),
			toSRGBByte(px[1]),
			toSRGBByte(px[2]),
		}
		if _, err := bw.Write(rgb[:]); err != nil {
			return fmt.Errorf("imageio: writing ppm pixel data: %w", err)
		}
	}
	return bw.Flush()
}

func toSRGBByte(linear float64) byte {
	c := vecmath.LinearToSRGB(math.Max(0, math.Min(1, linear)))
	return byte(math.Round(c * 255))
}
