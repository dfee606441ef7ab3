// Package lighting provides the scene's single light and its marker pose.
package lighting

import (
	"fmt"
	"strings"

	"github.com/Faultbox/cubelight/pkg/math"
)

// Kind is the light model used by the lit shader.
type Kind int32

const (
	Directional Kind = iota
	Point
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case Directional:
		return "directional"
	case Point:
		return "point"
	default:
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
}

// ParseKind parses "directional" or "point".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "directional", "direction":
		return Directional, nil
	case "point", "":
		return Point, nil
	}
	return 0, fmt.Errorf("unknown light kind %q", s)
}

// Light is a single light source. It is drawn as a small emissive cube at
// Position; the shading itself happens in the lit shader.
type Light struct {
	Color     math.Vec3
	Position  math.Vec3
	Direction math.Vec3
	Kind      Kind

	on bool
}

// New returns a white point light at the origin that is switched on.
func New() *Light {
	return &Light{
		Color: math.V3(1, 1, 1),
		Kind:  Point,
		on:    true,
	}
}

// SetColor sets the light color.
func (l *Light) SetColor(r, g, b float32) {
	l.Color = math.V3(r, g, b)
}

// SetPosition sets the light position.
func (l *Light) SetPosition(p math.Vec3) {
	l.Position = p
}

// SetDirection sets the light direction. Only directional lights use it.
func (l *Light) SetDirection(d math.Vec3) {
	l.Direction = d
}

// SetKind sets the light kind.
func (l *Light) SetKind(k Kind) {
	l.Kind = k
}

// TurnOn enables the marker pass.
func (l *Light) TurnOn() {
	l.on = true
}

// TurnOff disables the marker pass.
func (l *Light) TurnOff() {
	l.on = false
}

// IsOn reports whether the marker is drawn.
func (l *Light) IsOn() bool {
	return l.on
}

// MarkerModel returns the model matrix of the marker cube: translate to the
// light position, then scale the unit cube by s.
func (l *Light) MarkerModel(s float32) math.Mat4 {
	return math.Translate(l.Position).Mul(math.Scale(math.V3(s, s, s)))
}

