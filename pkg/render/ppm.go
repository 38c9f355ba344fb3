package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PPMHeader returns the plain PPM header: magic, dimensions and max value.
func (c *Canvas) PPMHeader() string {
	return fmt.Sprintf("P3\n%d %d\n%d\n", c.Width, c.Height, MaxColourValue)
}

// PPMData returns one "r g b" line per pixel in row-major order.
func (c *Canvas) PPMData() string {
	var sb strings.Builder
	sb.Grow(len(c.Pixels) * len("255 255 255\n"))
	_ = c.writePPMData(&sb)
	return sb.String()
}

func (c *Canvas) writePPMData(w io.Writer) error {
	for _, col := range c.Pixels {
		if _, err := io.WriteString(w, col.RGBString()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WritePPM writes the header followed by the pixel data.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(c.PPMHeader()); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	if err := c.writePPMData(bw); err != nil {
		return fmt.Errorf("write ppm data: %w", err)
	}
	return bw.Flush()
}

// SavePPM saves the canvas as a plain PPM file.
func (c *Canvas) SavePPM(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return c.WritePPM(f)
}
