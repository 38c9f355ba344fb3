// phong - Phong-shaded sphere ray tracer
// Renders a single lit sphere to a PPM (or PNG) image, or previews it live in
// the terminal.
//
// Preview controls:
//
//	Arrows/WASD - Orbit the light
//	R           - Reset the light
//	P           - Save the current frame to preview.ppm
//	Q/Esc       - Quit
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fang.Execute(ctx, newRootCmd())
	stop()
	if err != nil {
		os.Exit(1)
	}
}
