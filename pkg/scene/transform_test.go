package scene

import (
	"errors"
	"testing"

	"github.com/taigrr/phong/pkg/math3d"
)

func TestTransformationDefault(t *testing.T) {
	tr := NewTransformation()
	if !tr.Matrix().Equal(math3d.Identity()) {
		t.Errorf("Matrix() = %v, want identity", tr.Matrix())
	}
	if !tr.InverseMatrix().Equal(math3d.Identity()) {
		t.Errorf("InverseMatrix() = %v, want identity", tr.InverseMatrix())
	}
}

func TestTransformationScale(t *testing.T) {
	base := NewTransformation()
	tr, err := base.Scale(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Matrix().Equal(math3d.Scale(1, 2, 3)) {
		t.Errorf("Matrix() = %v, want scale(1, 2, 3)", tr.Matrix())
	}
	if !base.Matrix().Equal(math3d.Identity()) {
		t.Error("Scale should not modify the receiver")
	}
	if got := tr.ApplyInverse(math3d.Point(1, 2, 3)); !got.Equal(math3d.Point(1, 1, 1)) {
		t.Errorf("ApplyInverse = %v, want (1, 1, 1)", got)
	}
}

func TestTransformationTranslateThenScale(t *testing.T) {
	tr, err := NewTransformation().Translate(10, 5, 7)
	if err != nil {
		t.Fatal(err)
	}
	tr, err = tr.Scale(5, 5, 5)
	if err != nil {
		t.Fatal(err)
	}

	// The most recent operation applies first
	if got := tr.Apply(math3d.Point(1, 0, 1)); !got.Equal(math3d.Point(15, 5, 12)) {
		t.Errorf("Apply(point) = %v, want (15, 5, 12)", got)
	}
	if got := tr.Apply(math3d.Direction(1, 0, 1)); !got.Equal(math3d.Direction(5, 0, 5)) {
		t.Errorf("Apply(direction) = %v, want (5, 0, 5)", got)
	}
	if got := tr.ApplyInverse(math3d.Point(15, 5, 12)); !got.Equal(math3d.Point(1, 0, 1)) {
		t.Errorf("ApplyInverse = %v, want (1, 0, 1)", got)
	}
}

func TestTransformationSingular(t *testing.T) {
	_, err := NewTransformation().Scale(0, 1, 1)
	if !errors.Is(err, math3d.ErrSingularMatrix) {
		t.Errorf("Scale(0, 1, 1): err = %v, want ErrSingularMatrix", err)
	}
	if _, err := FromMatrix(math3d.Mat4{}); !errors.Is(err, math3d.ErrSingularMatrix) {
		t.Errorf("FromMatrix(zero): err = %v, want ErrSingularMatrix", err)
	}
}

func TestTransformationMul(t *testing.T) {
	id := NewTransformation()
	if got := id.Mul(id); !got.Matrix().Equal(math3d.Identity()) {
		t.Errorf("identity * identity = %v", got.Matrix())
	}

	tr, _ := NewTransformation().Translate(1, 2, 3)
	sc, _ := NewTransformation().Scale(2, 2, 2)
	m := tr.Mul(sc)

	if got := m.Matrix().Mul(m.InverseMatrix()); !got.Equal(math3d.Identity()) {
		t.Errorf("composed matrix times its inverse = %v, want identity", got)
	}
	if got := m.Apply(math3d.Point(1, 1, 1)); !got.Equal(math3d.Point(3, 4, 5)) {
		t.Errorf("Apply = %v, want (3, 4, 5)", got)
	}
}

func TestTransformationStubs(t *testing.T) {
	tr, _ := NewTransformation().Translate(1, 2, 3)
	if got := tr.Shear(1, 1, 1); got != tr {
		t.Error("Shear should return the receiver unchanged")
	}
	if got := tr.Rotate(1, 1, 1); got != tr {
		t.Error("Rotate should return the receiver unchanged")
	}
}
