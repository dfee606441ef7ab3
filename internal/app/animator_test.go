package app

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/cubelight/internal/engine/material"
	"github.com/Faultbox/cubelight/internal/engine/shape"
	"github.com/Faultbox/cubelight/pkg/math"
)

func newTestAnimator() *Animator {
	return NewAnimator(math.V3(1, 0, 0), math.V3(1, 1, 1), math.V3(0, 1, 0), 90, 2, 4)
}

func TestAnimatorSpinWraps(t *testing.T) {
	a := newTestAnimator()
	c := shape.NewCube(material.Material{})

	for i := 0; i < 5; i++ {
		a.Step(c)
	}
	assert.InDelta(t, 90, a.Angle(), 1e-4)

	a.SpinSpeed = -180
	a.Step(c)
	assert.InDelta(t, 270, a.Angle(), 1e-4)
}

func TestAnimatorPoseMatchesReference(t *testing.T) {
	a := NewAnimator(math.V3(1, 2, 3), math.V3(2, 1, 1), math.V3(0, 1, 0), 30, 0, 0)
	c := shape.NewCube(material.Material{})
	a.Step(c)
	a.Step(c)

	want := mgl32.HomogRotate3D(mgl32.DegToRad(60), mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.Translate3D(1, 2, 3)).
		Mul4(mgl32.Scale3D(2, 1, 1))
	got := c.Model()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			assert.InDelta(t, want.At(row, col), got.At(row, col), 1e-5, "row %d col %d", row, col)
		}
	}
}

func TestAnimatorPoseDoesNotAccumulate(t *testing.T) {
	a := NewAnimator(math.V3(0, 0, 0), math.V3(1, 1, 1), math.V3(0, 1, 0), 0, 0, 0)
	c := shape.NewCube(material.Material{})
	for i := 0; i < 10; i++ {
		a.Step(c)
	}
	assert.True(t, c.Model().ApproxEqual(math.Identity(), 1e-6))
}

func TestAnimatorJump(t *testing.T) {
	a := newTestAnimator()
	a.SpinSpeed = 0
	c := shape.NewCube(material.Material{})

	assert.Equal(t, float32(0), a.Height())
	assert.True(t, a.Jump())
	assert.False(t, a.Jump(), "a second jump must wait for landing")

	var heights []float32
	for a.Jumping() {
		a.Step(c)
		heights = append(heights, a.Height())
	}

	// Frames 1..4 of a 4 frame jump, then grounded.
	assert.Len(t, heights, 5)
	assert.InDelta(t, 1.5, heights[0], 1e-5)
	assert.InDelta(t, 2, heights[1], 1e-5)
	assert.InDelta(t, 1.5, heights[2], 1e-5)
	assert.InDelta(t, 0, heights[3], 1e-5)
	assert.Equal(t, float32(0), heights[4])

	assert.True(t, a.Jump(), "can jump again after landing")
}

func TestAnimatorJumpDisabled(t *testing.T) {
	a := newTestAnimator()
	a.JumpFrames = 0
	assert.False(t, a.Jump())
	assert.False(t, a.Jumping())
}

func TestAnimatorJumpLiftsCube(t *testing.T) {
	a := newTestAnimator()
	a.SpinSpeed = 0
	c := shape.NewCube(material.Material{})

	a.Jump()
	a.Step(c)
	a.Step(c)

	p := c.Model().TransformPoint(math.V3(0, 0, 0))
	assert.InDelta(t, 1, p.X, 1e-5)
	assert.InDelta(t, 2, p.Y, 1e-5)
}

func TestAnimatorReset(t *testing.T) {
	a := newTestAnimator()
	c := shape.NewCube(material.Material{})
	a.Jump()
	a.Step(c)

	a.Reset(c)

	assert.Equal(t, float32(0), a.Angle())
	assert.False(t, a.Jumping())
	assert.True(t, c.Model().ApproxEqual(math.Translate(math.V3(1, 0, 0)), 1e-6))
}
