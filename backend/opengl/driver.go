// Package opengl provides the OpenGL 4.1 core backend for learngl: the
// shader Driver, GLFW window and input, meshes, textures and readback.
//
// Every function in this package must be called on the thread that owns the
// current GL context.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
)

// Driver implements learngl.Driver on the current OpenGL context.
type Driver struct{}

var _ learngl.Driver = (*Driver)(nil)

// NewDriver returns a driver bound to whatever context is current.
func NewDriver() *Driver {
	return &Driver{}
}

func (*Driver) CreateShader(stage learngl.Stage) uint32 {
	switch stage {
	case learngl.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case learngl.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (*Driver) CompileShader(shader uint32, source string) (bool, string) {
	csource, free := gl.Strs(cstr(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return status != gl.FALSE, ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return status != gl.FALSE, gl.GoStr(&log[0])
}

func (*Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*Driver) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	// The linked binary does not need the stages; detaching lets
	// DeleteShader free them right away.
	for _, s := range shaders {
		gl.DetachShader(program, s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return status != gl.FALSE, ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return status != gl.FALSE, gl.GoStr(&log[0])
}

func (*Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func (*Driver) ProgramUniform1i(program uint32, location int32, v int32) {
	gl.ProgramUniform1i(program, location, v)
}

func (*Driver) ProgramUniform1f(program uint32, location int32, v float32) {
	gl.ProgramUniform1f(program, location, v)
}

func (*Driver) ProgramUniform2f(program uint32, location int32, x, y float32) {
	gl.ProgramUniform2f(program, location, x, y)
}

func (*Driver) ProgramUniform3f(program uint32, location int32, x, y, z float32) {
	gl.ProgramUniform3f(program, location, x, y, z)
}

func (*Driver) ProgramUniform4f(program uint32, location int32, x, y, z, w float32) {
	gl.ProgramUniform4f(program, location, x, y, z, w)
}

func (*Driver) ProgramUniformMatrix4(program uint32, location int32, m mgl32.Mat4) {
	gl.ProgramUniformMatrix4fv(program, location, 1, false, &m[0])
}

// cstr appends the NUL terminator go-gl expects, unless already present.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
