package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cubelight/internal/config"
	"github.com/Faultbox/cubelight/internal/engine/camera"
	"github.com/Faultbox/cubelight/internal/engine/input"
)

func defaultControls(t *testing.T) Controls {
	t.Helper()
	keys, err := config.Default().Controls.Keys()
	require.NoError(t, err)
	return NewControls(keys)
}

func TestControlsHeldActions(t *testing.T) {
	c := defaultControls(t)
	in := input.New()
	in.Push(keyDown(input.KeyW))
	in.Push(keyDown(input.KeyD))

	intent := c.Read(in)
	assert.Equal(t, camera.Actions(camera.Forward, camera.Right), intent.Held)
	assert.False(t, intent.Jump)

	// Held keys persist into the next frame, presses do not.
	in.BeginFrame()
	in.Push(keyUp(input.KeyD))
	intent = c.Read(in)
	assert.Equal(t, camera.Actions(camera.Forward), intent.Held)
}

func TestControlsCommands(t *testing.T) {
	c := defaultControls(t)
	in := input.New()
	in.Push(keyDown(input.KeyH))
	in.Push(keyDown(input.KeyR))

	intent := c.Read(in)
	assert.True(t, intent.Jump)
	assert.True(t, intent.Reset)
	assert.True(t, intent.Held.Has(camera.Jump))
	assert.False(t, intent.Quit)

	in.BeginFrame()
	intent = c.Read(in)
	assert.False(t, intent.Jump, "jump fires once per press")
	assert.True(t, intent.Held.Has(camera.Jump))
}

func TestControlsQuit(t *testing.T) {
	c := defaultControls(t)

	in := input.New()
	in.Push(keyDown(input.KeyEscape))
	assert.True(t, c.Read(in).Quit)

	in = input.New()
	in.Push(input.Event{Type: input.EventQuit})
	assert.True(t, c.Read(in).Quit)
}

func TestControlsCustomBindings(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Forward = "up"
	keys, err := cfg.Controls.Keys()
	require.NoError(t, err)
	c := NewControls(keys)

	in := input.New()
	in.Push(keyDown(input.KeyW))
	assert.False(t, c.Read(in).Held.Has(camera.Forward))

	in.Push(keyDown(input.KeyUp))
	assert.True(t, c.Read(in).Held.Has(camera.Forward))
}

func TestControlsScreenshot(t *testing.T) {
	c := defaultControls(t)
	in := input.New()
	in.Push(keyDown(input.KeyP))
	assert.True(t, c.Read(in).Screenshot)

	in.BeginFrame()
	assert.False(t, c.Read(in).Screenshot)
}
