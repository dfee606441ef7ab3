// Package camera provides the free-look camera that produces the view and
// projection matrices each frame.
package camera

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cubelight/pkg/math"
	"github.com/chewxy/math32"
)

const (
	MinFOV   = 1.0
	MaxFOV   = 45.0
	MaxPitch = 89.0

	Near = 0.1
	Far  = 100.0

	DefaultSpeed       = 0.2
	DefaultSensitivity = 0.15
)

// ErrDegenerateViewport is returned by SetCamera for a zero or negative
// viewport dimension.
var ErrDegenerateViewport = errors.New("degenerate viewport")

// Action is a logical movement direction.
type Action uint8

const (
	Forward Action = iota
	Back
	Left
	Right
	Up
	// Jump is reserved; the camera ignores it and the frame loop uses it to
	// trigger the cube's jump animation.
	Jump
)

// ActionSet is the set of actions held during a frame.
type ActionSet uint8

// Actions builds a set from the given actions.
func Actions(as ...Action) ActionSet {
	var s ActionSet
	for _, a := range as {
		s = s.With(a)
	}
	return s
}

// With returns s with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Has reports whether a is in s.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Config holds the initial pose and tuning of a camera.
type Config struct {
	Position    math.Vec3
	Yaw         float32 // degrees
	Pitch       float32 // degrees
	FOV         float32 // degrees
	Speed       float32
	Sensitivity float32
}

// DefaultConfig returns a camera at (0,0,5) looking down -Z.
func DefaultConfig() Config {
	return Config{
		Position:    math.V3(0, 0, 5),
		Yaw:         -90,
		Pitch:       0,
		FOV:         MaxFOV,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
	}
}

// Camera is a yaw/pitch free-look camera with a fixed world up vector.
// View and projection are recomputed by SetCamera; the accessors only return
// the stored values.
type Camera struct {
	position math.Vec3
	front    math.Vec3
	up       math.Vec3

	yaw   float32
	pitch float32
	fov   float32

	speed       float32
	sensitivity float32

	lastX, lastY float32
	firstLook    bool

	view math.Mat4
	proj math.Mat4
}

// New creates a camera for a window of the given size. The pointer reference
// starts at the window center.
func New(width, height int, cfg Config) *Camera {
	c := &Camera{
		position:    cfg.Position,
		up:          math.V3(0, 1, 0),
		yaw:         cfg.Yaw,
		pitch:       math.Clamp(cfg.Pitch, -MaxPitch, MaxPitch),
		fov:         math.Clamp(cfg.FOV, MinFOV, MaxFOV),
		speed:       cfg.Speed,
		sensitivity: cfg.Sensitivity,
		lastX:       float32(width) / 2,
		lastY:       float32(height) / 2,
		firstLook:   true,
	}
	c.updateFront()

	if err := c.SetCamera(width, height); err != nil {
		// Keep usable matrices until the first valid viewport arrives.
		c.view = math.LookAt(c.position, c.position.Add(c.front), c.up)
		c.proj = math.Perspective(math.Radians(c.fov), 1, Near, Far)
	}
	return c
}

// Move translates the camera for every held action. Forward/back follow the
// view direction, left/right strafe along front x up, and up raises the
// camera by half a step. Simultaneous actions add up.
func (c *Camera) Move(held ActionSet) {
	right := c.front.Cross(c.up).Normalize()

	if held.Has(Forward) {
		c.position = c.position.Add(c.front.Scale(c.speed))
	}
	if held.Has(Left) {
		c.position = c.position.Sub(right.Scale(c.speed))
	}
	if held.Has(Back) {
		c.position = c.position.Sub(c.front.Scale(c.speed))
	}
	if held.Has(Right) {
		c.position = c.position.Add(right.Scale(c.speed))
	}
	if held.Has(Up) {
		c.position.Y += 0.5 * c.speed
	}
}

// Look turns the camera by the pointer movement since the last call. The
// first call after New or ResetLook only records the pointer position.
func (c *Camera) Look(x, y float32) {
	if c.firstLook {
		c.lastX = x
		c.lastY = y
		c.firstLook = false
	}

	// Screen Y grows downwards.
	dx := (x - c.lastX) * c.sensitivity
	dy := (c.lastY - y) * c.sensitivity
	c.lastX = x
	c.lastY = y

	c.yaw += dx
	c.pitch = math.Clamp(c.pitch+dy, -MaxPitch, MaxPitch)
	c.updateFront()
}

// ResetLook makes the next Look call re-seed the pointer reference.
func (c *Camera) ResetLook() {
	c.firstLook = true
}

// Zoom changes the field of view by delta degrees, staying within
// [MinFOV, MaxFOV].
func (c *Camera) Zoom(delta float32) {
	if c.fov >= MinFOV && c.fov <= MaxFOV {
		c.fov += delta
	}
	c.fov = math.Clamp(c.fov, MinFOV, MaxFOV)
}

// SetCamera recomputes the view and projection matrices for a viewport of
// the given size. Call it once per frame before reading View or Projection.
func (c *Camera) SetCamera(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("set camera %dx%d: %w", width, height, ErrDegenerateViewport)
	}
	c.view = math.LookAt(c.position, c.position.Add(c.front), c.up)
	c.proj = math.Perspective(math.Radians(c.fov), float32(width)/float32(height), Near, Far)
	return nil
}

// SetPosition moves the camera without changing its orientation.
func (c *Camera) SetPosition(p math.Vec3) {
	c.position = p
}

// View returns the view matrix computed by the last SetCamera.
func (c *Camera) View() math.Mat4 { return c.view }

// Projection returns the projection matrix computed by the last SetCamera.
func (c *Camera) Projection() math.Mat4 { return c.proj }

// Position returns the eye position.
func (c *Camera) Position() math.Vec3 { return c.position }

// Front returns the unit view direction.
func (c *Camera) Front() math.Vec3 { return c.front }

// Up returns the world up vector.
func (c *Camera) Up() math.Vec3 { return c.up }

// Yaw returns the yaw in degrees.
func (c *Camera) Yaw() float32 { return c.yaw }

// Pitch returns the pitch in degrees.
func (c *Camera) Pitch() float32 { return c.pitch }

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float32 { return c.fov }

func (c *Camera) updateFront() {
	yaw := math.Radians(c.yaw)
	pitch := math.Radians(c.pitch)

	c.front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}
