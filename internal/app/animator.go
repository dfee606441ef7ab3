package app

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cubelight/internal/engine/shape"
	"github.com/Faultbox/cubelight/pkg/math"
)

// Animator drives the cube's pose: a constant spin and an optional jump.
// Every frame it sets the absolute pose (reset then compose) so nothing
// accumulates across frames.
//
// The model matrix is rotation * translation * scale, so a position off the
// spin axis orbits around it.
type Animator struct {
	Position   math.Vec3
	Scale      math.Vec3
	SpinAxis   math.Vec3
	SpinSpeed  float32 // degrees per frame
	JumpHeight float32
	JumpFrames int

	angle     float32
	jumpFrame int // frames into the current jump, -1 when grounded
}

// NewAnimator returns a grounded animator at angle zero.
func NewAnimator(position, scale, spinAxis math.Vec3, spinSpeed, jumpHeight float32, jumpFrames int) *Animator {
	return &Animator{
		Position:   position,
		Scale:      scale,
		SpinAxis:   spinAxis,
		SpinSpeed:  spinSpeed,
		JumpHeight: jumpHeight,
		JumpFrames: jumpFrames,
		jumpFrame:  -1,
	}
}

// Jump starts a jump. It returns false if one is already running or jumps
// are disabled.
func (a *Animator) Jump() bool {
	if a.Jumping() || a.JumpFrames <= 0 {
		return false
	}
	a.jumpFrame = 0
	return true
}

// Jumping reports whether a jump is in progress.
func (a *Animator) Jumping() bool {
	return a.jumpFrame >= 0
}

// Angle returns the current spin angle in degrees, in [0, 360).
func (a *Animator) Angle() float32 {
	return a.angle
}

// Height returns the current jump offset: a parabola that peaks at
// JumpHeight halfway through the jump.
func (a *Animator) Height() float32 {
	if !a.Jumping() {
		return 0
	}
	t := float32(a.jumpFrame) / float32(a.JumpFrames)
	return 4 * a.JumpHeight * t * (1 - t)
}

// Step advances one frame and applies the new pose to c.
func (a *Animator) Step(c *shape.Cube) {
	a.angle = math32.Mod(a.angle+a.SpinSpeed, 360)
	if a.angle < 0 {
		a.angle += 360
	}
	if a.Jumping() {
		a.jumpFrame++
		if a.jumpFrame > a.JumpFrames {
			a.jumpFrame = -1
		}
	}
	a.Apply(c)
}

// Apply writes the current pose to c without advancing time.
func (a *Animator) Apply(c *shape.Cube) {
	c.SetRotation(a.angle, a.SpinAxis)
	c.SetTranslation(a.Position.Add(math.V3(0, a.Height(), 0)))
	c.SetScale(a.Scale)
	c.Recompute()
}

// Reset returns to angle zero on the ground and applies that pose to c.
func (a *Animator) Reset(c *shape.Cube) {
	a.angle = 0
	a.jumpFrame = -1
	a.Apply(c)
}
