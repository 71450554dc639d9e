// Package renderer turns a world into an image: the camera projects rays
// through pixels, the canvas accumulates colors, and the PPM writer
// serializes the result.
package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/user/go-whitted-raytracer/pkg/core"
)

// ppmMaxLineLen is the longest line the plain PPM writer emits. Some viewers
// reject lines over 70 characters.
const ppmMaxLineLen = 70

// Canvas is a fixed-size grid of colors, row-major, origin at the top left.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel sets the color at (x, y). Coordinates outside the canvas are
// ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// WritePPM serializes the canvas in plain PPM ("P3") format: a header, then
// one row of pixels per logical line, wrapped to stay under 70 characters,
// ending with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			for _, v := range []float64{p.R, p.G, p.B} {
				sample := fmt.Sprintf("%d", clampByte(v))
				switch {
				case lineLen == 0:
					// First sample on the line.
				case lineLen+1+len(sample) > ppmMaxLineLen:
					if _, err := bw.WriteString("\n"); err != nil {
						return fmt.Errorf("writing ppm pixels: %w", err)
					}
					lineLen = 0
				default:
					if err := bw.WriteByte(' '); err != nil {
						return fmt.Errorf("writing ppm pixels: %w", err)
					}
					lineLen++
				}
				if _, err := bw.WriteString(sample); err != nil {
					return fmt.Errorf("writing ppm pixels: %w", err)
				}
				lineLen += len(sample)
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return fmt.Errorf("writing ppm pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing ppm output: %w", err)
	}
	return nil
}

// clampByte scales a [0,1] component to [0,255], clamping values shading
// pushed out of range.
func clampByte(v float64) int {
	scaled := int(math.Round(v * 255))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}
