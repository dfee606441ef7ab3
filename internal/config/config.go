// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/cubelight/internal/engine/input"
	"github.com/Faultbox/cubelight/internal/engine/lighting"
	"github.com/Faultbox/cubelight/internal/engine/material"
	"github.com/Faultbox/cubelight/internal/logger"
)

// Config holds all application settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Light    LightConfig    `yaml:"light"`
	Controls ControlsConfig `yaml:"controls"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title         string     `yaml:"title"`
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	Backend       string     `yaml:"backend"` // sdl or glfw
	CaptureCursor bool       `yaml:"capture_cursor"`
	ClearColor    [3]float32 `yaml:"clear_color"`
	ShowFPS       bool       `yaml:"show_fps"`
}

// CameraConfig holds the initial camera pose and tuning. Angles are degrees.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	FOV         float32    `yaml:"fov"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// SceneConfig holds the cube's material, pose and animation.
type SceneConfig struct {
	Material   string     `yaml:"material"`
	Position   [3]float32 `yaml:"position"`
	Scale      [3]float32 `yaml:"scale"`
	SpinAxis   [3]float32 `yaml:"spin_axis"`
	SpinSpeed  float32    `yaml:"spin_speed"` // degrees per frame
	JumpHeight float32    `yaml:"jump_height"`
	JumpFrames int        `yaml:"jump_frames"`
}

// LightConfig holds the light source. If both Longitude and Latitude are
// set they override Direction.
type LightConfig struct {
	Kind        string     `yaml:"kind"` // point or directional
	Color       [3]float32 `yaml:"color"`
	Position    [3]float32 `yaml:"position"`
	Direction   [3]float32 `yaml:"direction"`
	Longitude   *float32   `yaml:"longitude,omitempty"`
	Latitude    *float32   `yaml:"latitude,omitempty"`
	MarkerScale float32    `yaml:"marker_scale"`
	Enabled     bool       `yaml:"enabled"`
}

// ControlsConfig maps actions to key names (see input.ParseKey).
type ControlsConfig struct {
	Forward    string `yaml:"forward"`
	Back       string `yaml:"back"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Up         string `yaml:"up"`
	Jump       string `yaml:"jump"`
	Reset      string `yaml:"reset"`
	Quit       string `yaml:"quit"`
	Screenshot string `yaml:"screenshot"`
}

// SnapshotConfig holds software snapshot settings. Dir is where the
// screenshot key writes captures of the live window.
type SnapshotConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Supersample int        `yaml:"supersample"`
	Background  [3]float32 `yaml:"background"`
	Dir         string     `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"` // console or json
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "cubelight",
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			Backend:       "sdl",
			CaptureCursor: true,
			ClearColor:    [3]float32{0.8, 0.8, 0.8},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 5},
			Yaw:         -90,
			Pitch:       0,
			FOV:         45,
			Speed:       0.2,
			Sensitivity: 0.15,
		},
		Scene: SceneConfig{
			Material:   material.Gold,
			Scale:      [3]float32{1, 1, 1},
			SpinAxis:   [3]float32{0, 1, 0},
			SpinSpeed:  0.5,
			JumpHeight: 1,
			JumpFrames: 40,
		},
		Light: LightConfig{
			Kind:        "point",
			Color:       [3]float32{1, 1, 1},
			Position:    [3]float32{1.2, 1, 2},
			Direction:   [3]float32{-0.2, -1, -0.3},
			MarkerScale: 0.2,
			Enabled:     true,
		},
		Controls: ControlsConfig{
			Forward:    "w",
			Back:       "s",
			Left:       "a",
			Right:      "d",
			Up:         "space",
			Jump:       "h",
			Reset:      "r",
			Quit:       "escape",
			Screenshot: "p",
		},
		Snapshot: SnapshotConfig{
			Width:       800,
			Height:      600,
			Supersample: 4,
			Background:  [3]float32{0.8, 0.8, 0.8},
			Dir:         "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Format:  logger.FormatConsole,
		},
	}
}

// Validate checks names and dimensions and returns every problem found.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch strings.ToLower(c.Window.Backend) {
	case "", "sdl", "sdl2", "glfw":
	default:
		add("window: unknown backend %q", c.Window.Backend)
	}

	if c.Camera.Speed < 0 || c.Camera.Sensitivity < 0 {
		add("camera: speed and sensitivity must not be negative")
	}

	if _, err := material.Find(c.Scene.Material); err != nil {
		errs = append(errs, fmt.Errorf("scene: %w", err))
	}
	if c.Scene.JumpFrames < 0 {
		add("scene: jump_frames %d must not be negative", c.Scene.JumpFrames)
	}

	if _, err := lighting.ParseKind(c.Light.Kind); err != nil {
		errs = append(errs, fmt.Errorf("light: %w", err))
	}
	if (c.Light.Longitude == nil) != (c.Light.Latitude == nil) {
		add("light: longitude and latitude must be set together")
	}
	if c.Light.MarkerScale < 0 {
		add("light: marker_scale %g must not be negative", c.Light.MarkerScale)
	}

	if _, err := c.Controls.Keys(); err != nil {
		errs = append(errs, fmt.Errorf("controls: %w", err))
	}

	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		add("snapshot: size %dx%d must be positive", c.Snapshot.Width, c.Snapshot.Height)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		add("logging: unknown format %q", c.Logging.Format)
	}

	return errors.Join(errs...)
}

// Bindings is the parsed form of ControlsConfig.
type Bindings struct {
	Forward    input.Key
	Back       input.Key
	Left       input.Key
	Right      input.Key
	Up         input.Key
	Jump       input.Key
	Reset      input.Key
	Quit       input.Key
	Screenshot input.Key
}

// Keys parses every binding.
func (c ControlsConfig) Keys() (Bindings, error) {
	var (
		b    Bindings
		errs []error
	)
	parse := func(action, name string, dst *input.Key) {
		k, err := input.ParseKey(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", action, err))
			return
		}
		*dst = k
	}
	parse("forward", c.Forward, &b.Forward)
	parse("back", c.Back, &b.Back)
	parse("left", c.Left, &b.Left)
	parse("right", c.Right, &b.Right)
	parse("up", c.Up, &b.Up)
	parse("jump", c.Jump, &b.Jump)
	parse("reset", c.Reset, &b.Reset)
	parse("quit", c.Quit, &b.Quit)
	parse("screenshot", c.Screenshot, &b.Screenshot)
	return b, errors.Join(errs...)
}
