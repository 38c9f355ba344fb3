package scene

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/phong/pkg/render"
)

// Trace returns the colour of pixel (x, y) on a width×height canvas.
// Rays that miss the object are black.
func (s *Scene) Trace(x, y, width, height int) render.Colour {
	target := s.Wall.PointAt(x, y, width, height)
	r := NewRay(s.Eye, target.Sub(s.Eye).Normalize())

	hit, ok := Hit(s.Object.Intersect(r))
	if !ok {
		return render.Black
	}

	point := r.Position(hit.T)
	normal := hit.Object.NormalAt(point)
	eye := r.Direction.Negate()
	return Lighting(hit.Object.Material(), point, s.Light, eye, normal)
}

// Render traces every pixel of c. Rows are spread over at most workers
// goroutines (runtime.NumCPU() when workers <= 0); each row is written by
// exactly one goroutine. It returns ctx.Err() if ctx is cancelled first.
func Render(ctx context.Context, s *Scene, c *render.Canvas, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := range c.Height {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for x := range c.Width {
				c.Write(x, y, s.Trace(x, y, c.Width, c.Height))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// RenderFile renders the default scene on a size×size canvas and saves it
// as PPM to path.
func RenderFile(ctx context.Context, size int, path string) error {
	c := render.NewCanvas(size, size)
	if err := Render(ctx, DefaultScene(), c, 0); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := c.SavePPM(path); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
