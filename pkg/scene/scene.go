package scene

import "github.com/taigrr/phong/pkg/math3d"

// Wall is the image plane rays are cast through. It is square in world units
// and perpendicular to the z axis.
type Wall struct {
	Z    float64 // Distance along z
	Size float64 // Extent of the shorter canvas side in world units
}

// PointAt returns the world-space point on the wall for pixel (x, y) of a
// width×height canvas. Pixels are square; +y is up, +x is right.
func (w Wall) PointAt(x, y, width, height int) math3d.Vec4 {
	pixel := w.Size / float64(min(width, height))
	halfW := pixel * float64(width) / 2
	halfH := pixel * float64(height) / 2
	return math3d.Point(
		-halfW+pixel*float64(x),
		halfH-pixel*float64(y),
		w.Z,
	)
}

// Scene is the read-only context shared by every pixel of a render.
type Scene struct {
	Eye    math3d.Vec4
	Wall   Wall
	Object Object
	Light  Light
}

// DefaultScene returns a unit sphere viewed from (0, 0, -5) through a 7×7
// wall at z=10, lit from the upper left by a unit light at (-10, 10, -10).
func DefaultScene() *Scene {
	return &Scene{
		Eye:    math3d.Point(0, 0, -5),
		Wall:   Wall{Z: 10, Size: 7},
		Object: NewSphere(),
		Light:  NewLight(1, math3d.Point(-10, 10, -10)),
	}
}
