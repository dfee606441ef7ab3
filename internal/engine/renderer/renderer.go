// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubelight/internal/engine/renderer/shaders"
	"github.com/Faultbox/cubelight/internal/engine/scene"
	"github.com/Faultbox/cubelight/internal/engine/shader"
	"github.com/Faultbox/cubelight/internal/engine/shape"
	"github.com/Faultbox/cubelight/internal/logger"
	"github.com/Faultbox/cubelight/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor math.Vec3
}

// Renderer draws frames with OpenGL. It implements scene.Backend.
// IMPORTANT: all methods must run on the thread that owns the GL context.
type Renderer struct {
	config Config
	log    *zap.Logger

	programs map[scene.Pass]*shader.Program
	current  *shader.Program

	cubeVAO uint32
	cubeVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		programs: make(map[scene.Pass]*shader.Program),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	// Drop errors left over from context creation.
	_ = CheckError()

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c.X, c.Y, c.Z, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	if err := r.createPrograms(); err != nil {
		r.Close()
		return nil, err
	}
	r.createCube()

	if err := CheckError(); err != nil {
		r.Close()
		return nil, fmt.Errorf("renderer setup: %w", err)
	}
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
		r.cubeVAO = 0
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
		r.cubeVBO = 0
	}
	for pass, p := range r.programs {
		p.Delete()
		delete(r.programs, pass)
	}
	r.current = nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame and reports any GL error raised while
// drawing it.
func (r *Renderer) End() error {
	gl.BindVertexArray(0)
	return CheckError()
}

// ReadPixels returns the back buffer as tightly packed RGBA rows, bottom row
// first. Call it after End and before the buffers are swapped.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Use activates the program for pass.
func (r *Renderer) Use(pass scene.Pass) scene.UniformSink {
	p, ok := r.programs[pass]
	if !ok {
		// Unreachable with the passes built in createPrograms.
		panic(fmt.Sprintf("renderer: no program for pass %s", pass))
	}
	if r.current != p {
		p.Use()
		r.current = p
	}
	return p
}

// Bind binds geometry's vertex array.
func (r *Renderer) Bind(geometry scene.Geometry) {
	switch geometry {
	case scene.GeometryCube:
		gl.BindVertexArray(r.cubeVAO)
	default:
		panic(fmt.Sprintf("renderer: unknown geometry %d", geometry))
	}
}

// Draw draws count vertices of the bound geometry as triangles.
func (r *Renderer) Draw(count int32) {
	gl.DrawArrays(gl.TRIANGLES, 0, count)
}

// createPrograms compiles one program per pass.
func (r *Renderer) createPrograms() error {
	sources := []struct {
		pass scene.Pass
		vert string
		frag string
	}{
		{scene.PassLit, shaders.PhongVertexShader, shaders.PhongFragmentShader},
		{scene.PassMarker, shaders.MarkerVertexShader, shaders.MarkerFragmentShader},
	}

	for _, s := range sources {
		p, err := shader.New(s.pass.String(), s.vert, s.frag)
		if err != nil {
			return fmt.Errorf("failed to create shader program: %w", err)
		}
		r.programs[s.pass] = p
		r.log.Debug("shader program created",
			zap.Stringer("pass", s.pass),
			zap.Uint32("program", p.ID()),
		)
	}
	return nil
}

// createCube uploads the cube vertex table. The lit and marker passes share it.
func (r *Renderer) createCube() {
	vertices := shape.CubeVertices
	stride := int32(shape.VertexStride * 4)

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("cube created",
		zap.Uint32("vao", r.cubeVAO),
		zap.Uint32("vbo", r.cubeVBO),
		zap.Int("vertices", shape.VertexCount),
	)
}

// CheckError drains the GL error queue and returns the first error, if any.
func CheckError() error {
	var first uint32
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == 0 {
			first = code
		}
	}
	if first == 0 {
		return nil
	}
	return fmt.Errorf("gl error: %s (0x%04x)", ErrorName(first), first)
}

// ErrorName returns the symbolic name of a glGetError code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "unknown"
	}
}

var _ scene.Backend = (*Renderer)(nil)
