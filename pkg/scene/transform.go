// Package scene holds the world being traced: the sphere, its material and
// transformation, the point light, and the per-pixel render loop.
package scene

import (
	"fmt"

	"github.com/taigrr/phong/pkg/math3d"
)

// Transformation is an affine matrix together with its cached inverse.
// The zero value is not usable; start from NewTransformation.
type Transformation struct {
	matrix  math3d.Mat4
	inverse math3d.Mat4
}

// NewTransformation returns the identity transformation.
func NewTransformation() Transformation {
	return Transformation{
		matrix:  math3d.Identity(),
		inverse: math3d.Identity(),
	}
}

// FromMatrix wraps m, computing its inverse.
func FromMatrix(m math3d.Mat4) (Transformation, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Transformation{}, err
	}
	return Transformation{matrix: m, inverse: inv}, nil
}

// Matrix returns the forward matrix.
func (t Transformation) Matrix() math3d.Mat4 {
	return t.matrix
}

// InverseMatrix returns the cached inverse matrix.
func (t Transformation) InverseMatrix() math3d.Mat4 {
	return t.inverse
}

// Scale returns t composed with a scaling. t is not modified.
func (t Transformation) Scale(x, y, z float64) (Transformation, error) {
	next, err := FromMatrix(t.matrix.Mul(math3d.Scale(x, y, z)))
	if err != nil {
		return Transformation{}, fmt.Errorf("scale (%g, %g, %g): %w", x, y, z, err)
	}
	return next, nil
}

// Translate returns t composed with a translation. t is not modified.
func (t Transformation) Translate(x, y, z float64) (Transformation, error) {
	next, err := FromMatrix(t.matrix.Mul(math3d.Translate(x, y, z)))
	if err != nil {
		return Transformation{}, fmt.Errorf("translate (%g, %g, %g): %w", x, y, z, err)
	}
	return next, nil
}

// Shear is not supported and returns t unchanged.
func (t Transformation) Shear(x, y, z float64) Transformation {
	return t
}

// Rotate is not supported and returns t unchanged.
func (t Transformation) Rotate(x, y, z float64) Transformation {
	return t
}

// Mul composes t and o so that o is applied first.
func (t Transformation) Mul(o Transformation) Transformation {
	return Transformation{
		matrix:  t.matrix.Mul(o.matrix),
		inverse: o.inverse.Mul(t.inverse),
	}
}

// Apply transforms v. Points are translated, directions are not.
func (t Transformation) Apply(v math3d.Vec4) math3d.Vec4 {
	return t.matrix.MulVec4(v)
}

// ApplyInverse maps v back through the inverse transformation.
func (t Transformation) ApplyInverse(v math3d.Vec4) math3d.Vec4 {
	return t.inverse.MulVec4(v)
}
