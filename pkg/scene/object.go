package scene

import "github.com/taigrr/phong/pkg/math3d"

// Object is a surface rays can hit.
type Object interface {
	// Intersect returns the ray parameters where r crosses the surface,
	// in ascending order.
	Intersect(r Ray) []Intersection
	// NormalAt returns the unit world-space normal at a world-space point.
	NormalAt(p math3d.Vec4) math3d.Vec4
	Material() Material
}

// Intersection is a crossing of a ray with an object at parameter T.
type Intersection struct {
	T      float64
	Object Object
}

// Hit returns the intersection with the smallest non-negative T. The input
// need not be sorted. ok is false when every T is negative or xs is empty.
func Hit(xs []Intersection) (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !ok || x.T < hit.T {
			hit, ok = x, true
		}
	}
	return hit, ok
}
