// Package softrender rasterizes a scene.Frame on the CPU with fauxgl. It is
// used for snapshots where no GL context is available.
package softrender

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"

	"github.com/Faultbox/cubelight/internal/engine/camera"
	"github.com/Faultbox/cubelight/internal/engine/lighting"
	"github.com/Faultbox/cubelight/internal/engine/scene"
	"github.com/Faultbox/cubelight/internal/engine/shape"
	"github.com/Faultbox/cubelight/pkg/math"
)

// Options controls the output image.
type Options struct {
	Width  int
	Height int
	// Supersample renders at this multiple of the output size and
	// downsamples for anti-aliasing. Values below 1 mean 1.
	Supersample int
	Background  math.Vec3
}

// Render draws f into a new image.
//
// fauxgl only applies a single matrix to positions, so object vertices are
// transformed to world space here with the frame's model and normal matrices
// and the shader gets the camera's view-projection. Lighting follows the lit
// pass with one difference: a point light is treated as directional, aimed
// from the object's origin.
func Render(f scene.Frame, opt Options) (image.Image, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("snapshot %dx%d: %w", opt.Width, opt.Height, camera.ErrDegenerateViewport)
	}
	ss := opt.Supersample
	if ss < 1 {
		ss = 1
	}

	ctx := fauxgl.NewContext(opt.Width*ss, opt.Height*ss)
	ctx.Cull = fauxgl.CullNone
	ctx.ClearColorBufferWith(color(opt.Background))
	ctx.ClearDepthBuffer()

	aspect := float64(opt.Width) / float64(opt.Height)
	eye := vector(f.Eye)
	viewProj := fauxgl.LookAt(eye, eye.Add(vector(f.Front)), vector(f.Up)).
		Perspective(float64(f.FOV), aspect, camera.Near, camera.Far)

	for _, o := range f.Objects {
		if o.Geometry != scene.GeometryCube {
			return nil, fmt.Errorf("snapshot: unsupported geometry %d", o.Geometry)
		}
		mat := o.Material
		lc := f.Light.Color
		l := f.Light
		toLight := lighting.DirectionTo(l.Kind, l.Position, l.Direction, o.Model.TransformPoint(math.Vec3{}))

		shader := fauxgl.NewPhongShader(viewProj, vector(toLight), eye)
		shader.ObjectColor = fauxgl.White
		shader.AmbientColor = color(mul(lc, mat.Ambient))
		shader.DiffuseColor = color(mul(lc, mat.Diffuse))
		shader.SpecularColor = color(mul(lc, mat.Specular))
		shader.SpecularPower = float64(mat.Shininess)
		ctx.Shader = shader
		ctx.DrawMesh(cubeMesh(o.Model, o.Normal))
	}

	if f.Light.On {
		ctx.Shader = fauxgl.NewSolidColorShader(viewProj, color(f.Light.Color))
		ctx.DrawMesh(cubeMesh(f.Light.Marker, math.NormalMatrix(f.Light.Marker)))
	}

	img := ctx.Image()
	if ss > 1 {
		img = resize.Resize(uint(opt.Width), uint(opt.Height), img, resize.Bilinear)
	}
	return img, nil
}

// Save writes img as a PNG file.
func Save(path string, img image.Image) error {
	if img == nil {
		return errors.New("save snapshot: nil image")
	}
	if err := fauxgl.SavePNG(path, img); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

// cubeMesh builds the cube in world space.
func cubeMesh(model math.Mat4, normal math.Mat3) *fauxgl.Mesh {
	triangles := make([]*fauxgl.Triangle, 0, shape.VertexCount/3)
	var vs [3]fauxgl.Vertex

	for i := 0; i < shape.VertexCount; i++ {
		v := shape.CubeVertices[i*shape.VertexStride : (i+1)*shape.VertexStride]
		p := model.TransformPoint(math.V3(v[0], v[1], v[2]))
		n := normal.MulVec3(math.V3(v[3], v[4], v[5])).Normalize()
		vs[i%3] = fauxgl.Vertex{Position: vector(p), Normal: vector(n)}
		if i%3 == 2 {
			triangles = append(triangles, fauxgl.NewTriangle(vs[0], vs[1], vs[2]))
		}
	}
	return fauxgl.NewTriangleMesh(triangles)
}

func mul(a, b math.Vec3) math.Vec3 {
	return math.V3(a.X*b.X, a.Y*b.Y, a.Z*b.Z)
}

func vector(v math.Vec3) fauxgl.Vector {
	return fauxgl.V(float64(v.X), float64(v.Y), float64(v.Z))
}

func color(c math.Vec3) fauxgl.Color {
	return fauxgl.Color{R: float64(c.X), G: float64(c.Y), B: float64(c.Z), A: 1}
}
