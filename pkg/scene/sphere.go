package scene

import (
	"math"

	"github.com/taigrr/phong/pkg/math3d"
)

// Sphere is a unit sphere centred on the origin of its object space.
// Its transformation places it in the world.
type Sphere struct {
	material  Material
	transform Transformation
}

// NewSphere creates a unit sphere with the default material and the
// identity transformation.
func NewSphere() *Sphere {
	return &Sphere{
		material:  DefaultMaterial(),
		transform: NewTransformation(),
	}
}

// Material returns the sphere's material.
func (s *Sphere) Material() Material {
	return s.material
}

// SetMaterial replaces the sphere's material.
func (s *Sphere) SetMaterial(m Material) {
	s.material = m
}

// Transform returns the object-to-world transformation.
func (s *Sphere) Transform() Transformation {
	return s.transform
}

// SetTransform replaces the object-to-world transformation.
func (s *Sphere) SetTransform(t Transformation) {
	s.transform = t
}

// Intersect solves |o + t·d|² = 1 in object space. A ray that misses yields
// nil; otherwise exactly two intersections are returned, smaller T first
// (equal for a tangent ray).
func (s *Sphere) Intersect(r Ray) []Intersection {
	local := r.Transform(s.transform.InverseMatrix())

	sphereToRay := local.Origin.Sub(math3d.Origin())
	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sq := math.Sqrt(discriminant)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

// NormalAt returns the unit surface normal at world point p.
func (s *Sphere) NormalAt(p math3d.Vec4) math3d.Vec4 {
	inv := s.transform.InverseMatrix()
	objectNormal := inv.MulVec4(p).Sub(math3d.Origin())
	worldNormal := inv.Transpose().MulVec4(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
