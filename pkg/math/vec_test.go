package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	want := V3(0, 0, 1)
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 4, 12).Normalize()
	if l := n.Length(); l < 0.9999 || l > 1.0001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", z)
	}
}

func TestMat3Inverse(t *testing.T) {
	m := RotateAxis(V3(1, 1, 0), Radians(50)).Mul(Scale(V3(1, 3, 0.25))).Mat3()

	if got := m.Inverse(); !got.ApproxEqual(Mat3(mgl32.Mat3(m).Inv()), 1e-4) {
		t.Errorf("Mat3.Inverse: got %v, want %v", got, mgl32.Mat3(m).Inv())
	}
	if got := (Mat3{}).Inverse(); got != Identity3() {
		t.Errorf("singular Mat3.Inverse: got %v, want identity", got)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tr := m.Transpose()
	if tr.At(0, 1) != m.At(1, 0) || tr.At(2, 0) != m.At(0, 2) {
		t.Errorf("Transpose: got %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("double Transpose should be identity operation")
	}
}

func TestNormalMatrix(t *testing.T) {
	if got := NormalMatrix(Identity()); got != Identity3() {
		t.Errorf("NormalMatrix(I) = %v, want identity", got)
	}

	model := Translate(V3(4, 5, 6)).Mul(Scale(V3(2, 1, 1)))
	got := NormalMatrix(model)
	want := mgl32.Mat4(model).Mat3().Inv().Transpose()
	if !got.ApproxEqual(Mat3(want), eps) {
		t.Errorf("NormalMatrix: got %v, want %v", got, want)
	}

	// A normal on the stretched axis keeps its direction.
	n := got.MulVec3(V3(1, 0, 0)).Normalize()
	if !n.ApproxEqual(V3(1, 0, 0), eps) {
		t.Errorf("normal direction: got %v", n)
	}
}

func TestMat3Determinant(t *testing.T) {
	m := Scale(V3(2, 3, 4)).Mat3()
	if got := m.Determinant(); got != 24 {
		t.Errorf("Determinant: got %v, want 24", got)
	}
	r := RotateAxis(V3(0, 0, 1), Radians(40)).Mat3()
	if got := r.Determinant(); got < 1-eps || got > 1+eps {
		t.Errorf("rotation Determinant: got %v, want 1", got)
	}
}
