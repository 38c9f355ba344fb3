package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/phong/pkg/math3d"
	"github.com/taigrr/phong/pkg/render"
	"github.com/taigrr/phong/pkg/scene"
)

const (
	orbitStep      = math.Pi / 16
	maxElevation   = math.Pi/2 - 0.05
	previewPPMPath = "preview.ppm"
)

// OrbitAxis eases one angle toward its target with a harmonica spring.
type OrbitAxis struct {
	Position float64
	Target   float64
	velocity float64 // internal spring velocity
	spring   harmonica.Spring
}

// NewOrbitAxis creates an axis at rest at angle.
func NewOrbitAxis(fps int, angle float64) OrbitAxis {
	return OrbitAxis{
		Position: angle,
		Target:   angle,
		// Frequency 6.0 = brisk, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances the spring by one frame.
func (a *OrbitAxis) Update() {
	a.Position, a.velocity = a.spring.Update(a.Position, a.velocity, a.Target)
}

// LightOrbit moves the light over a sphere of fixed radius around the
// origin. Input and the frame loop run on different goroutines.
type LightOrbit struct {
	mu        sync.Mutex
	Azimuth   OrbitAxis
	Elevation OrbitAxis
	radius    float64
	home      [2]float64
}

// NewLightOrbit starts an orbit at the light position p.
func NewLightOrbit(p math3d.Vec4, fps int) *LightOrbit {
	radius := math3d.Direction(p.X, p.Y, p.Z).Len()
	az, el := 0.0, 0.0
	if radius > 0 {
		az = math.Atan2(p.X, -p.Z)
		el = math.Asin(p.Y / radius)
	}
	return &LightOrbit{
		Azimuth:   NewOrbitAxis(fps, az),
		Elevation: NewOrbitAxis(fps, el),
		radius:    radius,
		home:      [2]float64{az, el},
	}
}

// Nudge moves the orbit targets. Elevation stays short of the poles.
func (o *LightOrbit) Nudge(dAz, dEl float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Azimuth.Target += dAz
	o.Elevation.Target = math.Max(-maxElevation, math.Min(maxElevation, o.Elevation.Target+dEl))
}

// Reset sends the light back to where it started.
func (o *LightOrbit) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Azimuth.Target = o.home[0]
	o.Elevation.Target = o.home[1]
}

// Update advances both springs by one frame.
func (o *LightOrbit) Update() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Azimuth.Update()
	o.Elevation.Update()
}

// Position returns the current light position.
func (o *LightOrbit) Position() math3d.Vec4 {
	o.mu.Lock()
	defer o.mu.Unlock()
	az, el := o.Azimuth.Position, o.Elevation.Position
	return math3d.Point(
		o.radius*math.Cos(el)*math.Sin(az),
		o.radius*math.Sin(el),
		-o.radius*math.Cos(el)*math.Cos(az),
	)
}

// previewCanvasSize returns the canvas for a terminal of cols×rows, keeping
// the last row for the status line.
func previewCanvasSize(cols, rows int) (int, int) {
	return max(cols, 1), max(2*(rows-1), 2)
}

func runPreview(ctx context.Context, base *scene.Scene, opts *options) error {
	fps := max(opts.fps, 1)

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	orbit := NewLightOrbit(base.Light.Position, fps)
	var size atomic.Int64
	size.Store(int64(width)<<32 | int64(height))
	var saveRequested atomic.Bool

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				size.Store(int64(ev.Width)<<32 | int64(ev.Height))
				term.Erase()
				term.Resize(ev.Width, ev.Height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "q", "ctrl+c"):
					cancel()
					return
				case ev.MatchString("a", "left"):
					orbit.Nudge(-orbitStep, 0)
				case ev.MatchString("d", "right"):
					orbit.Nudge(orbitStep, 0)
				case ev.MatchString("w", "up"):
					orbit.Nudge(0, orbitStep)
				case ev.MatchString("s", "down"):
					orbit.Nudge(0, -orbitStep)
				case ev.MatchString("r"):
					orbit.Reset()
				case ev.MatchString("p"):
					saveRequested.Store(true)
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(fps)
	status := ""

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := time.Now()
		packed := size.Load()
		cols, rows := int(packed>>32), int(packed&0xffffffff)
		cw, ch := previewCanvasSize(cols, rows)

		orbit.Update()
		frame := *base
		frame.Light.Position = orbit.Position()

		c := render.NewCanvas(cw, ch)
		if err := scene.Render(ctx, &frame, c, opts.workers); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("render frame: %w", err)
		}

		if saveRequested.Swap(false) {
			if err := c.SavePPM(previewPPMPath); err != nil {
				status = fmt.Sprintf("save failed: %v", err)
			} else {
				status = "saved " + previewPPMPath
			}
		}

		c.Draw(term, uv.Rect(0, 0, cw, rows-1))
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		// Status line
		p := frame.Light.Position
		fmt.Fprintf(os.Stdout, "\x1b[%d;1H\x1b[2K%s %s %s", rows, lightStyle.Render("◉"),
			fmt.Sprintf("light (%.1f, %.1f, %.1f)", p.X, p.Y, p.Z),
			hintStyle.Render("arrows orbit · r reset · p save · q quit  "+status))

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
