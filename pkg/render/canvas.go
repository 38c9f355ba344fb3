// Package render provides the pixel buffer and image output for phong.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Canvas is a 2D grid of colours, initially black.
type Canvas struct {
	Width  int
	Height int
	Pixels []Colour // Row-major pixel data
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]Colour, width*height),
	}
}

// Write sets the pixel at (x, y). Writing outside the canvas is a
// programming error and panics.
func (c *Canvas) Write(x, y int, col Colour) {
	c.Pixels[c.index(x, y)] = col
}

// At returns the colour at (x, y). It panics outside the canvas.
func (c *Canvas) At(x, y int) Colour {
	return c.Pixels[c.index(x, y)]
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("render: pixel (%d, %d) outside %dx%d canvas", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// ToImage converts the canvas to a standard Go image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, c.Pixels[y*c.Width+x].RGBA())
		}
	}
	return img
}

// SavePNG saves the canvas as a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, c.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Save writes the canvas to path, choosing PNG for a ".png" extension and
// PPM otherwise.
func (c *Canvas) Save(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return c.SavePNG(path)
	}
	return c.SavePPM(path)
}
