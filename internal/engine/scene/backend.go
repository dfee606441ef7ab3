package scene

import "github.com/Faultbox/cubelight/pkg/math"

// UniformSink receives named uniform values for the active program.
// Unknown names are ignored by implementations.
type UniformSink interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v math.Vec2)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v math.Vec4)
	SetMat3(name string, m math.Mat3)
	SetMat4(name string, m math.Mat4)
}

// Pass selects the program used for a group of draws.
type Pass int

const (
	// PassLit shades objects with their material and the scene light.
	PassLit Pass = iota
	// PassMarker draws the light marker in the flat light color.
	PassMarker
)

func (p Pass) String() string {
	switch p {
	case PassLit:
		return "lit"
	case PassMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Geometry identifies a vertex buffer owned by the backend.
type Geometry int

const (
	// GeometryCube is the 36-vertex position+normal cube.
	GeometryCube Geometry = iota
)

// Backend consumes a frame. The GL renderer implements it; tests use a
// recording fake.
type Backend interface {
	// Use activates the program for pass and returns its uniform sink.
	Use(pass Pass) UniformSink
	// Bind makes geometry current for the following draws.
	Bind(geometry Geometry)
	// Draw issues a triangle list of count vertices.
	Draw(count int32)
}
