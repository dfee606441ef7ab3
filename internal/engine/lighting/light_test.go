package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cubelight/pkg/math"
)

func TestNewDefaults(t *testing.T) {
	l := New()
	assert.Equal(t, math.V3(1, 1, 1), l.Color)
	assert.Equal(t, math.Vec3{}, l.Position)
	assert.Equal(t, Point, l.Kind)
	assert.True(t, l.IsOn())
}

func TestTurnOnOff(t *testing.T) {
	l := New()
	l.TurnOff()
	assert.False(t, l.IsOn())
	l.TurnOn()
	assert.True(t, l.IsOn())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		err  bool
	}{
		{"point", Point, false},
		{"Directional", Directional, false},
		{"", Point, false},
		{"spot", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Kind {
	t.Helper()
	k, err := ParseKind(s)
	require.NoError(t, err)
	return k
}

func TestMarkerModel(t *testing.T) {
	l := New()
	l.SetPosition(math.V3(1.2, 1, 2))

	m := l.MarkerModel(0.2)

	// The marker cube's corner (0.5,0.5,0.5) lands 0.1 away from the light.
	got := m.TransformPoint(math.V3(0.5, 0.5, 0.5))
	assert.True(t, got.ApproxEqual(math.V3(1.3, 1.1, 2.1), 1e-5), "got %v", got)
}

func TestDirectionTo(t *testing.T) {
	pos := math.V3(0, 10, 0)
	dir := math.V3(0, -3, 0)

	got := DirectionTo(Point, pos, dir, math.V3(0, 0, 0))
	assert.True(t, got.ApproxEqual(math.V3(0, 1, 0), 1e-6), "got %v", got)

	got = DirectionTo(Point, pos, dir, math.V3(0, 10, 4))
	assert.True(t, got.ApproxEqual(math.V3(0, 0, -1), 1e-6), "got %v", got)

	// Directional lights ignore both positions.
	got = DirectionTo(Directional, pos, dir, math.V3(5, 5, 5))
	assert.True(t, got.ApproxEqual(math.V3(0, 1, 0), 1e-6), "got %v", got)
}

func TestDirectionFromAngles(t *testing.T) {
	down := DirectionFromAngles(0, 90)
	assert.True(t, down.ApproxEqual(math.V3(0, -1, 0), 1e-5), "got %v", down)

	horizon := DirectionFromAngles(90, 0)
	assert.True(t, horizon.ApproxEqual(math.V3(-1, 0, 0), 1e-5), "got %v", horizon)

	assert.InDelta(t, 1.0, DirectionFromAngles(33, 47).Length(), 1e-5)
}
