package scene

import (
	"math"
	"testing"

	"github.com/taigrr/phong/pkg/math3d"
	"github.com/taigrr/phong/pkg/render"
)

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	if m.Colour != render.White || m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("DefaultMaterial() = %+v", m)
	}
}

func TestLighting(t *testing.T) {
	m := DefaultMaterial()
	p := math3d.Point(0, 0, 0)
	normal := math3d.Direction(0, 0, -1)
	s2 := math.Sqrt2 / 2

	tests := []struct {
		name      string
		eye       math3d.Vec4
		light     Light
		expected  render.Colour
		tolerance float64
	}{
		{
			name:      "eye between light and surface",
			eye:       math3d.Direction(0, 0, -1),
			light:     NewLight(1, math3d.Point(0, 0, -10)),
			expected:  render.NewColour(1.9, 1.9, 1.9),
			tolerance: 1e-9,
		},
		{
			name:      "eye offset 45°",
			eye:       math3d.Direction(0, s2, -s2),
			light:     NewLight(1, math3d.Point(0, 0, -10)),
			expected:  render.NewColour(1.0, 1.0, 1.0),
			tolerance: 1e-9,
		},
		{
			name:      "light offset 45°",
			eye:       math3d.Direction(0, 0, -1),
			light:     NewLight(1, math3d.Point(0, 10, -10)),
			expected:  render.NewColour(0.7364, 0.7364, 0.7364),
			tolerance: 1e-4,
		},
		{
			name:      "eye in the path of the reflection",
			eye:       math3d.Direction(0, -s2, -s2),
			light:     NewLight(1, math3d.Point(0, 10, -10)),
			expected:  render.NewColour(1.6364, 1.6364, 1.6364),
			tolerance: 1e-4,
		},
		{
			name:      "light behind the surface",
			eye:       math3d.Direction(0, 0, -1),
			light:     NewLight(1, math3d.Point(0, 0, 10)),
			expected:  render.NewColour(0.1, 0.1, 0.1),
			tolerance: 1e-9,
		},
		{
			name:      "half intensity",
			eye:       math3d.Direction(0, 0, -1),
			light:     NewLight(0.5, math3d.Point(0, 0, -10)),
			expected:  render.NewColour(0.95, 0.95, 0.95),
			tolerance: 1e-9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lighting(m, p, tc.light, tc.eye, normal)
			if math.Abs(got.R-tc.expected.R) > tc.tolerance ||
				math.Abs(got.G-tc.expected.G) > tc.tolerance ||
				math.Abs(got.B-tc.expected.B) > tc.tolerance {
				t.Errorf("Lighting = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestLightingColouredMaterial(t *testing.T) {
	m := DefaultMaterial()
	m.Colour = render.NewColour(1, 0.2, 1)
	m.Specular = 0

	got := Lighting(m, math3d.Point(0, 0, 0), NewLight(1, math3d.Point(0, 0, -10)),
		math3d.Direction(0, 0, -1), math3d.Direction(0, 0, -1))
	if want := render.NewColour(1, 0.2, 1); !got.ApproxEqual(want) {
		t.Errorf("Lighting = %v, want %v", got, want)
	}
}

func TestLightingEvenShininessReflectionAwayFromEye(t *testing.T) {
	// Reflection·eye is -1; with shininess 200 the power is +1 and adds the
	// full specular term
	m := DefaultMaterial()
	normal := math3d.Direction(0, 0, -1)

	tests := []struct {
		name     string
		light    Light
		eye      math3d.Vec4
		expected float64
	}{
		{"light in front, eye behind", NewLight(1, math3d.Point(0, 0, -10)), math3d.Direction(0, 0, 1), 1.9},
		{"light at 45°, eye opposite the reflection", NewLight(1, math3d.Point(0, 10, -10)),
			math3d.Direction(0, math.Sqrt2/2, math.Sqrt2/2), 1.6364},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lighting(m, math3d.Origin(), tc.light, tc.eye, normal)
			if math.Abs(got.R-tc.expected) > 1e-4 || got.R != got.G || got.G != got.B {
				t.Errorf("Lighting = %v, want grey %v", got, tc.expected)
			}
		})
	}
}

func TestLightingOddShininessReflectionAwayFromEye(t *testing.T) {
	m := DefaultMaterial()
	m.Shininess = 201
	got := Lighting(m, math3d.Origin(), NewLight(1, math3d.Point(0, 0, -10)),
		math3d.Direction(0, 0, 1), math3d.Direction(0, 0, -1))
	if want := render.NewColour(1, 1, 1); !got.ApproxEqual(want) {
		t.Errorf("Lighting = %v, want %v", got, want)
	}
}
