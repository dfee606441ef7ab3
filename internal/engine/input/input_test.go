package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeldPersistsAcrossFrames(t *testing.T) {
	in := New()
	in.Push(Event{Type: EventKeyDown, Key: KeyW})

	in.BeginFrame()
	assert.Empty(t, in.Events())
	assert.True(t, in.Held(KeyW))
	assert.False(t, in.IsKeyPressed(KeyW), "pressed is per frame")

	in.Push(Event{Type: EventKeyUp, Key: KeyW})
	assert.False(t, in.Held(KeyW))
}

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.BeginFrame()
	in.Push(Event{Type: EventKeyDown, Key: KeyR})

	assert.True(t, in.IsKeyPressed(KeyR))
	assert.False(t, in.IsKeyPressed(KeyQ))
	require.Len(t, in.Events(), 1)
}

func TestQuitAndRelease(t *testing.T) {
	in := New()
	in.Push(Event{Type: EventKeyDown, Key: KeySpace})
	in.Push(Event{Type: EventKeyDown, Key: KeyUnknown})
	assert.False(t, in.Held(KeyUnknown))

	in.ReleaseAll()
	assert.False(t, in.Held(KeySpace))

	assert.False(t, in.QuitRequested())
	in.Push(Event{Type: EventQuit})
	assert.True(t, in.QuitRequested())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"w", KeyW},
		{"W", KeyW},
		{"z", KeyZ},
		{"space", KeySpace},
		{"Escape", KeyEscape},
		{"esc", KeyEscape},
		{"left-shift", KeyLeftShift},
		{"left shift", KeyLeftShift},
		{"shift", KeyLeftShift},
		{"up", KeyUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}

	_, err := ParseKey("hyper")
	assert.Error(t, err)
	_, err = ParseKey("")
	assert.Error(t, err)
}

func TestKeyStringRoundTrip(t *testing.T) {
	for k := KeyA; k < keyCount; k++ {
		got, err := ParseKey(k.String())
		require.NoError(t, err, "key %d", k)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "unknown", KeyUnknown.String())
}
