package scene

import (
	"math"

	"github.com/taigrr/phong/pkg/math3d"
	"github.com/taigrr/phong/pkg/render"
)

// Light is a white point light.
type Light struct {
	Intensity float64
	Position  math3d.Vec4
}

// NewLight creates a point light.
func NewLight(intensity float64, position math3d.Vec4) Light {
	return Light{Intensity: intensity, Position: position}
}

// Lighting shades point p with the Phong model. eye points from the surface
// toward the viewer and normal is the unit surface normal. The result is not
// clamped.
func Lighting(m Material, p math3d.Vec4, l Light, eye, normal math3d.Vec4) render.Colour {
	effective := m.Colour.Scale(l.Intensity)
	lightDir := l.Position.Sub(p).Normalize()
	ambient := effective.Scale(m.Ambient)

	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	specular := render.Black
	reflectDir := lightDir.Negate().Reflect(normal)
	// Raised to the integer shininess before the sign check, so an even
	// exponent keeps a reflection pointing away from the eye
	reflectDotEye := math.Pow(reflectDir.Dot(eye), float64(int(m.Shininess)))
	if reflectDotEye > 0 {
		s := l.Intensity * m.Specular * reflectDotEye
		specular = render.NewColour(s, s, s)
	}

	return ambient.Add(diffuse).Add(specular)
}
