package app

import (
	"github.com/Faultbox/cubelight/internal/config"
	"github.com/Faultbox/cubelight/internal/engine/camera"
	"github.com/Faultbox/cubelight/internal/engine/input"
)

// Intent is what the user asked for this frame.
type Intent struct {
	Held       camera.ActionSet
	Jump       bool
	Reset      bool
	Quit       bool
	Screenshot bool
}

// Controls maps bound keys to camera actions and commands.
type Controls struct {
	keys config.Bindings
}

// NewControls creates controls for the given bindings.
func NewControls(keys config.Bindings) Controls {
	return Controls{keys: keys}
}

// Read samples held keys and this frame's presses.
func (c Controls) Read(in *input.Input) Intent {
	var held camera.ActionSet
	bind := []struct {
		key    input.Key
		action camera.Action
	}{
		{c.keys.Forward, camera.Forward},
		{c.keys.Back, camera.Back},
		{c.keys.Left, camera.Left},
		{c.keys.Right, camera.Right},
		{c.keys.Up, camera.Up},
		{c.keys.Jump, camera.Jump},
	}
	for _, b := range bind {
		if in.Held(b.key) {
			held = held.With(b.action)
		}
	}

	return Intent{
		Held:       held,
		Jump:       in.IsKeyPressed(c.keys.Jump),
		Reset:      in.IsKeyPressed(c.keys.Reset),
		Quit:       in.IsKeyPressed(c.keys.Quit) || in.QuitRequested(),
		Screenshot: in.IsKeyPressed(c.keys.Screenshot),
	}
}
