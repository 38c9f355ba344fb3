package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/phong/pkg/math3d"
	"github.com/taigrr/phong/pkg/render"
	"github.com/taigrr/phong/pkg/scene"
)

func TestBuildSceneDefaults(t *testing.T) {
	s, err := newOptions().buildScene()
	if err != nil {
		t.Fatalf("buildScene() error = %v", err)
	}
	want := scene.DefaultScene()
	if !s.Light.Position.Equal(want.Light.Position) || s.Light.Intensity != want.Light.Intensity {
		t.Errorf("Light = %+v, want %+v", s.Light, want.Light)
	}
	if got := s.Object.Material(); got != scene.DefaultMaterial() {
		t.Errorf("Material = %+v, want default", got)
	}
}

func TestBuildSceneColour(t *testing.T) {
	opts := newOptions()
	opts.colour = "ff0000"
	s, err := opts.buildScene()
	if err != nil {
		t.Fatalf("buildScene() error = %v", err)
	}
	if got := s.Object.Material().Colour; !got.ApproxEqual(render.NewColour(1, 0, 0)) {
		t.Errorf("Colour = %v, want red", got)
	}
}

func TestBuildSceneErrors(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*options)
	}{
		{"bad colour", func(o *options) { o.colour = "#zzz" }},
		{"short light", func(o *options) { o.light = []float64{1, 2} }},
		{"missing scene", func(o *options) { o.scenePath = filepath.Join(t.TempDir(), "nope.gltf") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newOptions()
			tt.apply(opts)
			if _, err := opts.buildScene(); err == nil {
				t.Error("buildScene() should fail")
			}
		})
	}
}

func TestBuildSceneGLTF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ball.gltf")
	doc := `{
  "asset": {"version": "2.0"},
  "materials": [{"pbrMetallicRoughness": {"baseColorFactor": [0, 0, 1, 1]}}],
  "nodes": [{"translation": [0, 1, 0]}]
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := newOptions()
	opts.scenePath = path
	opts.light = []float64{0, 0, -10}
	s, err := opts.buildScene()
	if err != nil {
		t.Fatalf("buildScene() error = %v", err)
	}
	if got := s.Object.Material().Colour; !got.ApproxEqual(render.NewColour(0, 0, 1)) {
		t.Errorf("Colour = %v, want blue", got)
	}
	if got := s.Object.NormalAt(math3d.Point(0, 2, 0)); !got.Equal(math3d.Direction(0, 1, 0)) {
		t.Errorf("NormalAt(top) = %v, want +y", got)
	}
	if !s.Light.Position.Equal(math3d.Point(0, 0, -10)) {
		t.Errorf("Light = %v", s.Light.Position)
	}
}
