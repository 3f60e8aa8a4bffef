package learngl

import "github.com/go-gl/mathgl/mgl32"

// Stage identifies one programmable stage of the pipeline.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Driver is the subset of the graphics API a Program needs.
// backend/opengl provides the OpenGL implementation.
//
// Handles are opaque; zero is never a valid handle. A uniform location of -1
// means the name is not an active uniform of the program.
type Driver interface {
	CreateShader(stage Stage) uint32
	// CompileShader compiles source into shader and reports the compile
	// status together with the driver's info log.
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	// LinkProgram attaches shaders to program, links it and reports the link
	// status together with the driver's info log.
	LinkProgram(program uint32, shaders ...uint32) (ok bool, log string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	ProgramUniform1i(program uint32, location int32, v int32)
	ProgramUniform1f(program uint32, location int32, v float32)
	ProgramUniform2f(program uint32, location int32, x, y float32)
	ProgramUniform3f(program uint32, location int32, x, y, z float32)
	ProgramUniform4f(program uint32, location int32, x, y, z, w float32)
	ProgramUniformMatrix4(program uint32, location int32, m mgl32.Mat4)
}
