package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

const uniformVertexSource = `#version 410 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos, 1.0);
}
`

const uniformFragmentSource = `#version 410 core
out vec4 FragColor;
uniform vec4 ourColor;
void main()
{
    FragColor = ourColor;
}
`

var trianglePositions = []float32{
	0.5, -0.5, 0.0, // bottom right
	-0.5, -0.5, 0.0, // bottom left
	0.0, 0.5, 0.0, // top
}

type uniformColor struct {
	prog *learngl.Program
	mesh *opengl.Mesh
}

// NewUniformColor draws a triangle whose green channel pulses with time.
func NewUniformColor(env Env) (Scene, error) {
	prog, err := learngl.New(env.Driver, learngl.Source{
		Vertex:   uniformVertexSource,
		Fragment: uniformFragmentSource,
	}, learngl.WithLogger(env.logger()))
	if err != nil {
		return nil, err
	}

	mesh, err := opengl.NewMesh(trianglePositions, nil, []opengl.Attrib{{Location: 0, Size: 3}})
	if err != nil {
		prog.Delete()
		return nil, err
	}
	return &uniformColor{prog: prog, mesh: mesh}, nil
}

// PulseColor returns the triangle color at time t.
func PulseColor(t float64) mgl32.Vec4 {
	green := float32(math.Sin(t)/2 + 0.5)
	return mgl32.Vec4{0, green, 0, 1}
}

func (s *uniformColor) Draw(f Frame) {
	clearScreen()
	s.prog.Use()
	s.prog.SetVec4("ourColor", PulseColor(f.Time))
	s.mesh.Draw()
}

func (s *uniformColor) Delete() {
	s.mesh.Delete()
	s.prog.Delete()
}
