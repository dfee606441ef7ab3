package math

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(V3(1, 2, 3))
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(V3(5, 10, 15))

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"translate", Translate(V3(10, 20, 30)), V3(1, 2, 3), V3(11, 22, 33)},
		{"scale", Scale(V3(2, 2, 2)), V3(1, 2, 3), V3(2, 4, 6)},
		{"rotate y 90", RotateAxis(V3(0, 1, 0), Radians(90)), V3(1, 0, 0), V3(0, 0, -1)},
		{"rotate z 90", RotateAxis(V3(0, 0, 1), Radians(90)), V3(1, 0, 0), V3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !got.ApproxEqual(tt.want, eps) {
				t.Errorf("TransformPoint: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateAxisNormalizesAxis(t *testing.T) {
	a := RotateAxis(V3(0, 5, 0), Radians(40))
	b := RotateAxis(V3(0, 1, 0), Radians(40))
	if !a.ApproxEqual(b, eps) {
		t.Errorf("unnormalized axis: got %v, want %v", a, b)
	}
	if RotateAxis(Vec3{}, 1) != Identity() {
		t.Error("zero axis should give identity")
	}
}

func TestRotateAxisMatchesMathGL(t *testing.T) {
	axis := V3(1, 2, 3)
	angle := Radians(37)

	got := RotateAxis(axis, angle)
	want := mgl32.HomogRotate3D(angle, mgl32.Vec3{1, 2, 3}.Normalize())

	if !got.ApproxEqual(Mat4(want), eps) {
		t.Errorf("RotateAxis: got %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(gomath.Pi/4), 1, 0.1, 100)

	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	want := mgl32.Perspective(float32(gomath.Pi/4), 1, 0.1, 100)
	if !m.ApproxEqual(Mat4(want), eps) {
		t.Errorf("Perspective: got %v, want %v", m, want)
	}
}

func TestLookAt(t *testing.T) {
	eye := V3(0, 0, 5)
	m := LookAt(eye, V3(0, 0, 4), V3(0, 1, 0))

	// Facing -Z from (0,0,5) is a pure translation by -5 along Z.
	if !m.ApproxEqual(Translate(V3(0, 0, -5)), eps) {
		t.Errorf("LookAt: got %v, want translate(0,0,-5)", m)
	}

	// The eye maps to the origin of view space.
	if p := m.TransformPoint(eye); !p.ApproxEqual(Vec3{}, eps) {
		t.Errorf("eye in view space: got %v, want origin", p)
	}
}

func TestLookAtMatchesMathGL(t *testing.T) {
	eye := V3(3, -2, 7)
	center := V3(-1, 0.5, 0)
	up := V3(0, 1, 0)

	got := LookAt(eye, center, up)
	want := mgl32.LookAtV(mgl32.Vec3{3, -2, 7}, mgl32.Vec3{-1, 0.5, 0}, mgl32.Vec3{0, 1, 0})

	if !got.ApproxEqual(Mat4(want), eps) {
		t.Errorf("LookAt: got %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float32
	}{
		{-100, -89},
		{0, 0},
		{89, 89},
		{90, 89},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, -89, 89); got != tt.want {
			t.Errorf("Clamp(%v): got %v, want %v", tt.v, got, tt.want)
		}
	}
}
