package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/taigrr/phong/pkg/math3d"
	"github.com/taigrr/phong/pkg/models"
	"github.com/taigrr/phong/pkg/render"
	"github.com/taigrr/phong/pkg/scene"
)

// options holds command-line settings shared by render and preview.
type options struct {
	filename  string
	size      int
	colour    string    // Hex material colour; empty keeps the material's own
	scenePath string    // Optional glTF file for material and placement
	light     []float64 // Light position x,y,z
	intensity float64
	workers   int
	fps       int
}

func newOptions() *options {
	d := scene.DefaultScene().Light
	return &options{
		light:     []float64{d.Position.X, d.Position.Y, d.Position.Z},
		intensity: d.Intensity,
		workers:   runtime.NumCPU(),
		fps:       30,
	}
}

func (o *options) addSceneFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.colour, "colour", "", "sphere colour as hex, e.g. #ff8000 (default white)")
	fs.StringVar(&o.scenePath, "scene", "", "glTF/GLB file to take the sphere's material and placement from")
	fs.Float64SliceVar(&o.light, "light", o.light, "light position x,y,z")
	fs.Float64Var(&o.intensity, "intensity", o.intensity, "light intensity")
	fs.IntVar(&o.workers, "workers", o.workers, "render goroutines")
	fs.IntVar(&o.fps, "fps", o.fps, "preview frame rate")
}

// buildScene applies the options on top of the default scene.
func (o *options) buildScene() (*scene.Scene, error) {
	s := scene.DefaultScene()
	sphere := scene.NewSphere()

	if o.scenePath != "" {
		asset, err := models.LoadGLTF(o.scenePath)
		if err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
		sphere.SetMaterial(asset.Material)
		sphere.SetTransform(asset.Transform)
	}

	if o.colour != "" {
		c, err := render.ParseHex(o.colour)
		if err != nil {
			return nil, err
		}
		m := sphere.Material()
		m.Colour = c
		sphere.SetMaterial(m)
	}

	if len(o.light) != 3 {
		return nil, fmt.Errorf("light needs 3 components x,y,z, got %d", len(o.light))
	}
	s.Light = scene.NewLight(o.intensity, math3d.Point(o.light[0], o.light[1], o.light[2]))
	s.Object = sphere

	return s, nil
}
