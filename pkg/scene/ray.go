package scene

import "github.com/taigrr/phong/pkg/math3d"

// Ray is a half-line from Origin along Direction.
type Ray struct {
	Origin    math3d.Vec4
	Direction math3d.Vec4
}

// NewRay creates a Ray.
func NewRay(origin, direction math3d.Vec4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t: Origin + Direction·t.
func (r Ray) Position(t float64) math3d.Vec4 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform maps the ray through m. The direction is not renormalized, so
// parameters along the transformed ray match the original.
func (r Ray) Transform(m math3d.Mat4) Ray {
	return Ray{
		Origin:    m.MulVec4(r.Origin),
		Direction: m.MulVec4(r.Direction),
	}
}
