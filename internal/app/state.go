package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubelight/internal/config"
	"github.com/Faultbox/cubelight/internal/engine/camera"
	"github.com/Faultbox/cubelight/internal/engine/input"
	"github.com/Faultbox/cubelight/internal/engine/lighting"
	"github.com/Faultbox/cubelight/internal/engine/material"
	"github.com/Faultbox/cubelight/internal/engine/scene"
	"github.com/Faultbox/cubelight/internal/engine/shape"
	"github.com/Faultbox/cubelight/internal/logger"
	"github.com/Faultbox/cubelight/pkg/math"
)

// State is everything the frame loop mutates, without any window or GL
// resources. The interactive loop and the snapshot renderer both use it.
type State struct {
	Camera   *camera.Camera
	Scene    *scene.Scene
	Animator *Animator
	Controls Controls

	// Screenshot is set by Update when the user asked for a capture of
	// this frame.
	Screenshot bool

	log           *zap.Logger
	width, height int
}

// NewState builds the camera, cube, light and controls described by cfg for
// a viewport of the given size.
func NewState(cfg *config.Config, width, height int) (*State, error) {
	mat, err := material.Find(cfg.Scene.Material)
	if err != nil {
		return nil, err
	}
	kind, err := lighting.ParseKind(cfg.Light.Kind)
	if err != nil {
		return nil, err
	}
	keys, err := cfg.Controls.Keys()
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}

	cam := camera.New(width, height, camera.Config{
		Position:    math.Vec3From(cfg.Camera.Position),
		Yaw:         cfg.Camera.Yaw,
		Pitch:       cfg.Camera.Pitch,
		FOV:         cfg.Camera.FOV,
		Speed:       cfg.Camera.Speed,
		Sensitivity: cfg.Camera.Sensitivity,
	})
	if err := cam.SetCamera(width, height); err != nil {
		return nil, err
	}

	light := lighting.New()
	light.SetKind(kind)
	c := cfg.Light.Color
	light.SetColor(c[0], c[1], c[2])
	light.SetPosition(math.Vec3From(cfg.Light.Position))
	dir := math.Vec3From(cfg.Light.Direction)
	if cfg.Light.Longitude != nil && cfg.Light.Latitude != nil {
		dir = lighting.DirectionFromAngles(*cfg.Light.Longitude, *cfg.Light.Latitude)
	}
	light.SetDirection(dir)
	if !cfg.Light.Enabled {
		light.TurnOff()
	}

	sc := scene.New(shape.NewCube(mat), light)
	sc.MarkerScale = cfg.Light.MarkerScale

	anim := NewAnimator(
		math.Vec3From(cfg.Scene.Position),
		math.Vec3From(cfg.Scene.Scale),
		math.Vec3From(cfg.Scene.SpinAxis),
		cfg.Scene.SpinSpeed,
		cfg.Scene.JumpHeight,
		cfg.Scene.JumpFrames,
	)
	anim.Apply(sc.Cube)

	return &State{
		Camera:   cam,
		Scene:    sc,
		Animator: anim,
		Controls: NewControls(keys),
		log:      logger.Named("app"),
		width:    width,
		height:   height,
	}, nil
}

// Size returns the viewport size.
func (s *State) Size() (int, int) {
	return s.width, s.height
}

// Update applies one frame of input and animation and recomputes the camera
// matrices. It reports whether the user asked to quit.
func (s *State) Update(in *input.Input) (quit bool, err error) {
	for _, e := range in.Events() {
		switch e.Type {
		case input.EventWindowResize:
			if e.Width <= 0 || e.Height <= 0 {
				// Minimized; keep drawing at the last real size.
				s.log.Debug("ignoring empty resize", zap.Int("width", e.Width), zap.Int("height", e.Height))
				continue
			}
			s.width, s.height = e.Width, e.Height
		case input.EventMouseMove:
			s.Camera.Look(e.MouseX, e.MouseY)
		case input.EventScroll:
			s.Camera.Zoom(e.ScrollY)
		}
	}

	intent := s.Controls.Read(in)
	if intent.Quit {
		return true, nil
	}
	s.Screenshot = intent.Screenshot

	s.Camera.Move(intent.Held)
	if intent.Reset {
		s.Animator.Reset(s.Scene.Cube)
		s.Camera.ResetLook()
		s.log.Debug("pose reset")
	}
	if intent.Jump && s.Animator.Jump() {
		s.log.Debug("jump")
	}
	s.Animator.Step(s.Scene.Cube)

	if err := s.Camera.SetCamera(s.width, s.height); err != nil {
		return false, err
	}
	return false, nil
}

// Frame snapshots the scene for rendering.
func (s *State) Frame() scene.Frame {
	return s.Scene.BuildFrame(s.Camera)
}
