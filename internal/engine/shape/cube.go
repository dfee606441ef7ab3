// Package shape holds the transform and material state of drawable shapes.
// It does not talk to the GPU; renderers read the derived matrices and the
// shared vertex table.
package shape

import (
	"github.com/Faultbox/cubelight/internal/engine/material"
	"github.com/Faultbox/cubelight/pkg/math"
)

// Cube is a unit cube with accumulated rotation, translation and scale.
//
// Each relative mutator right-multiplies its matrix by a new elementary
// transform, so repeated calls compose. Model and NormalModel are caches that
// only change when Recompute runs.
type Cube struct {
	material material.Material

	rotation    math.Mat4
	translation math.Mat4
	scale       math.Mat4

	model       math.Mat4
	normalModel math.Mat3
}

// NewCube returns a cube with identity transforms and the given material.
func NewCube(m material.Material) *Cube {
	c := &Cube{material: m}
	c.Reset()
	return c
}

// Rotate composes a rotation of angle degrees around axis.
func (c *Cube) Rotate(angle float32, axis math.Vec3) {
	c.rotation = c.rotation.Mul(math.RotateAxis(axis, math.Radians(angle)))
}

// Translate composes a translation by v.
func (c *Cube) Translate(v math.Vec3) {
	c.translation = c.translation.Mul(math.Translate(v))
}

// TranslateXYZ composes a translation by (x, y, z).
func (c *Cube) TranslateXYZ(x, y, z float32) {
	c.Translate(math.V3(x, y, z))
}

// Scale composes a scale by v.
func (c *Cube) Scale(v math.Vec3) {
	c.scale = c.scale.Mul(math.Scale(v))
}

// ScaleXYZ composes a scale by (x, y, z).
func (c *Cube) ScaleXYZ(x, y, z float32) {
	c.Scale(math.V3(x, y, z))
}

// SetRotation replaces the accumulated rotation.
func (c *Cube) SetRotation(angle float32, axis math.Vec3) {
	c.rotation = math.Identity()
	c.Rotate(angle, axis)
}

// SetTranslation replaces the accumulated translation.
func (c *Cube) SetTranslation(v math.Vec3) {
	c.translation = math.Identity()
	c.Translate(v)
}

// SetScale replaces the accumulated scale.
func (c *Cube) SetScale(v math.Vec3) {
	c.scale = math.Identity()
	c.Scale(v)
}

// Reset sets all transforms to identity and recomputes the derived matrices.
func (c *Cube) Reset() {
	c.rotation = math.Identity()
	c.translation = math.Identity()
	c.scale = math.Identity()
	c.Recompute()
}

// Recompute derives the model matrix (rotation * translation * scale) and the
// normal matrix. Call it after mutating transforms and before reading Model.
func (c *Cube) Recompute() {
	c.model = c.rotation.Mul(c.translation).Mul(c.scale)
	c.normalModel = math.NormalMatrix(c.model)
}

// SetMaterial sets the cube's material.
func (c *Cube) SetMaterial(m material.Material) {
	c.material = m
}

// Material returns the cube's material.
func (c *Cube) Material() material.Material {
	return c.material
}

// Model returns the model matrix from the last Recompute.
func (c *Cube) Model() math.Mat4 { return c.model }

// NormalModel returns the normal matrix from the last Recompute.
func (c *Cube) NormalModel() math.Mat3 { return c.normalModel }

// Rotation returns the accumulated rotation.
func (c *Cube) Rotation() math.Mat4 { return c.rotation }

// Translation returns the accumulated translation.
func (c *Cube) Translation() math.Mat4 { return c.translation }

// ScaleMatrix returns the accumulated scale.
func (c *Cube) ScaleMatrix() math.Mat4 { return c.scale }
