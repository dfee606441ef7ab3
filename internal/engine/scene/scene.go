// Package scene assembles the per-frame render state of the cube and its
// light. BuildFrame snapshots everything a renderer needs as plain data, so
// the GL renderer and the software snapshot renderer draw the same frame.
package scene

import (
	"github.com/Faultbox/cubelight/internal/engine/camera"
	"github.com/Faultbox/cubelight/internal/engine/lighting"
	"github.com/Faultbox/cubelight/internal/engine/material"
	"github.com/Faultbox/cubelight/internal/engine/shape"
	"github.com/Faultbox/cubelight/pkg/math"
)

// DefaultMarkerScale is the edge length of the light marker cube.
const DefaultMarkerScale = 0.2

// Scene owns the cube and the light.
type Scene struct {
	Cube  *shape.Cube
	Light *lighting.Light

	MarkerScale float32
}

// New creates a scene with a single cube and a light.
func New(cube *shape.Cube, light *lighting.Light) *Scene {
	return &Scene{
		Cube:        cube,
		Light:       light,
		MarkerScale: DefaultMarkerScale,
	}
}

// Object is one lit draw.
type Object struct {
	Model    math.Mat4
	Normal   math.Mat3
	Material material.Material
	Geometry Geometry
	Count    int32
}

// LightState is the light as seen by one frame.
type LightState struct {
	Color     math.Vec3
	Position  math.Vec3
	Direction math.Vec3
	Kind      lighting.Kind
	On        bool
	Marker    math.Mat4
}

// Frame is everything needed to draw one frame.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4

	Eye   math.Vec3
	Front math.Vec3
	Up    math.Vec3
	FOV   float32

	Objects []Object
	Light   LightState
}

// BuildFrame snapshots the scene as seen by cam. The camera matrices and the
// cube's derived matrices are read as stored; callers run SetCamera and
// Recompute first.
func (s *Scene) BuildFrame(cam *camera.Camera) Frame {
	return Frame{
		View:       cam.View(),
		Projection: cam.Projection(),
		Eye:        cam.Position(),
		Front:      cam.Front(),
		Up:         cam.Up(),
		FOV:        cam.FOV(),
		Objects: []Object{{
			Model:    s.Cube.Model(),
			Normal:   s.Cube.NormalModel(),
			Material: s.Cube.Material(),
			Geometry: GeometryCube,
			Count:    shape.VertexCount,
		}},
		Light: LightState{
			Color:     s.Light.Color,
			Position:  s.Light.Position,
			Direction: s.Light.Direction,
			Kind:      s.Light.Kind,
			On:        s.Light.IsOn(),
			Marker:    s.Light.MarkerModel(s.MarkerScale),
		},
	}
}

// Submit issues the frame to b: every object in the lit pass, then the light
// marker if the light is on.
func (f *Frame) Submit(b Backend) {
	u := b.Use(PassLit)
	u.SetMat4("view", f.View)
	u.SetMat4("projection", f.Projection)
	u.SetVec3("viewPos", f.Eye)
	u.SetVec3("light.position", f.Light.Position)
	u.SetVec3("light.direction", f.Light.Direction)
	u.SetVec3("light.color", f.Light.Color)
	u.SetInt("light.kind", int32(f.Light.Kind))

	for _, o := range f.Objects {
		u.SetMat4("model", o.Model)
		u.SetMat3("normalModel", o.Normal)
		u.SetVec3("material.ambient", o.Material.Ambient)
		u.SetVec3("material.diffuse", o.Material.Diffuse)
		u.SetVec3("material.specular", o.Material.Specular)
		u.SetFloat("material.shininess", o.Material.Shininess)
		b.Bind(o.Geometry)
		b.Draw(o.Count)
	}

	if !f.Light.On {
		return
	}
	m := b.Use(PassMarker)
	m.SetMat4("model", f.Light.Marker)
	m.SetMat4("view", f.View)
	m.SetMat4("projection", f.Projection)
	m.SetVec4("lightClr", math.Vec4From(f.Light.Color, 1))
	b.Bind(GeometryCube)
	b.Draw(shape.VertexCount)
}
