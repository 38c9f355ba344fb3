package scene

import "github.com/taigrr/phong/pkg/render"

// Material holds the Phong reflection coefficients of a surface.
type Material struct {
	Colour    render.Colour
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64 // Truncated to an integer exponent when shading
}

// DefaultMaterial returns a white material with ambient 0.1, diffuse 0.9,
// specular 0.9 and shininess 200.
func DefaultMaterial() Material {
	return Material{
		Colour:    render.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}
