package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/cubelight/internal/engine/material"
	"github.com/Faultbox/cubelight/pkg/math"
)

const tol = 1e-5

var yAxis = math.V3(0, 1, 0)

func TestNewCubeIsIdentity(t *testing.T) {
	c := NewCube(material.Material{})

	assert.Equal(t, math.Identity(), c.Model())
	assert.Equal(t, math.Identity3(), c.NormalModel())
}

func TestRotateAccumulates(t *testing.T) {
	twice := NewCube(material.Material{})
	twice.Rotate(30, yAxis)
	twice.Rotate(30, yAxis)

	once := NewCube(material.Material{})
	once.Rotate(60, yAxis)

	assert.True(t, twice.Rotation().ApproxEqual(once.Rotation(), tol),
		"got %v, want %v", twice.Rotation(), once.Rotation())
}

func TestTranslateAndScaleAccumulate(t *testing.T) {
	c := NewCube(material.Material{})
	c.TranslateXYZ(1, 0, 0)
	c.Translate(math.V3(0, 2, 0))
	c.ScaleXYZ(2, 2, 2)
	c.Scale(math.V3(1, 3, 1))

	assert.True(t, c.Translation().ApproxEqual(math.Translate(math.V3(1, 2, 0)), tol))
	assert.True(t, c.ScaleMatrix().ApproxEqual(math.Scale(math.V3(2, 6, 2)), tol))
}

func TestModelIsStaleUntilRecompute(t *testing.T) {
	c := NewCube(material.Material{})
	c.TranslateXYZ(3, 0, 0)

	assert.Equal(t, math.Identity(), c.Model())

	c.Recompute()
	assert.Equal(t, math.Translate(math.V3(3, 0, 0)), c.Model())
}

func TestModelOrderIsRotationTranslationScale(t *testing.T) {
	c := NewCube(material.Material{})
	c.Rotate(90, yAxis)
	c.TranslateXYZ(1, 0, 0)
	c.ScaleXYZ(2, 1, 1)
	c.Recompute()

	want := mgl32.HomogRotate3D(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.Translate3D(1, 0, 0)).
		Mul4(mgl32.Scale3D(2, 1, 1))
	assert.True(t, c.Model().ApproxEqual(math.Mat4(want), tol))

	// Local (0.5,0,0) scales to 1, translates to 2, then rotates onto -Z.
	p := c.Model().TransformPoint(math.V3(0.5, 0, 0))
	assert.True(t, p.ApproxEqual(math.V3(0, 0, -2), tol), "got %v", p)
}

func TestNormalModelUnderNonUniformScale(t *testing.T) {
	c := NewCube(material.Material{})
	c.Rotate(25, math.V3(1, 0, 1))
	c.ScaleXYZ(1, 4, 0.5)
	c.Recompute()

	want := mgl32.Mat4(c.Model()).Mat3().Inv().Transpose()
	assert.True(t, c.NormalModel().ApproxEqual(math.Mat3(want), 1e-4))
}

func TestSettersReplace(t *testing.T) {
	c := NewCube(material.Material{})
	c.Rotate(45, yAxis)
	c.SetRotation(10, yAxis)

	ref := NewCube(material.Material{})
	ref.Rotate(10, yAxis)
	assert.True(t, c.Rotation().ApproxEqual(ref.Rotation(), tol))

	c.TranslateXYZ(5, 5, 5)
	c.SetTranslation(math.V3(1, 0, 0))
	assert.Equal(t, math.Translate(math.V3(1, 0, 0)), c.Translation())

	c.ScaleXYZ(9, 9, 9)
	c.SetScale(math.V3(2, 2, 2))
	assert.Equal(t, math.Scale(math.V3(2, 2, 2)), c.ScaleMatrix())
}

func TestReset(t *testing.T) {
	c := NewCube(material.Material{})
	c.Rotate(45, yAxis)
	c.TranslateXYZ(1, 2, 3)
	c.Recompute()

	c.Reset()
	assert.Equal(t, math.Identity(), c.Rotation())
	assert.Equal(t, math.Identity(), c.Model())
	assert.Equal(t, math.Identity3(), c.NormalModel())
}

func TestMaterial(t *testing.T) {
	gold, _ := material.Lookup(material.Gold)
	c := NewCube(gold)
	assert.Equal(t, gold, c.Material())

	pearl, _ := material.Lookup(material.Pearl)
	c.SetMaterial(pearl)
	assert.Equal(t, pearl, c.Material())
}

func TestCubeVerticesNormalsPointOutward(t *testing.T) {
	for i := 0; i < VertexCount; i++ {
		v := CubeVertices[i*VertexStride : (i+1)*VertexStride]
		pos := math.V3(v[0], v[1], v[2])
		n := math.V3(v[3], v[4], v[5])

		assert.InDelta(t, 1.0, n.Length(), tol)
		// Every vertex lies on the face its normal points out of.
		assert.InDelta(t, 0.5, pos.Dot(n), tol, "vertex %d", i)
	}
}
