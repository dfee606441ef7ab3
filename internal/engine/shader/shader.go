// Package shader provides OpenGL shader compilation and uniform upload.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubelight/pkg/math"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log[:logLen]))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log[:logLen]))
	}

	return shader, nil
}

// Program is a linked shader program with cached uniform locations.
// Setters for names the program does not use are silently ignored, like
// glUniform* on location -1.
type Program struct {
	id        uint32
	name      string
	locations map[string]int32
}

// New compiles and links a program. name is used in error messages.
func New(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	return &Program{
		id:        id,
		name:      name,
		locations: make(map[string]int32),
	}, nil
}

// ID returns the GL program handle.
func (p *Program) ID() uint32 { return p.id }

// Name returns the program name.
func (p *Program) Name() string { return p.name }

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Location returns the cached location of a uniform, looking it up on first use.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	p.locations[name] = loc
	return loc
}

// SetInt sets an int uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v math.Vec2) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform2f(loc, v.X, v.Y)
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v math.Vec4) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
	}
}

// SetMat3 sets a mat3 uniform. Matrices are column-major.
func (p *Program) SetMat3(name string, m math.Mat3) {
	if loc := p.Location(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, m.Ptr())
	}
}

// SetMat4 sets a mat4 uniform. Matrices are column-major.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.Location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
