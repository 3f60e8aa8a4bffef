package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

const helloVertexSource = `#version 410 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const helloFragmentSource = `#version 410 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// HelloColor is the constant color the hello triangle scene draws.
var HelloColor = [4]float32{1.0, 0.5, 0.2, 1.0}

var (
	quadPositions = []float32{
		0.5, 0.5, 0.0, // top right
		0.5, -0.5, 0.0, // bottom right
		-0.5, -0.5, 0.0, // bottom left
		-0.5, 0.5, 0.0, // top left
	}
	quadIndices = []uint32{
		0, 1, 3, // first triangle
		1, 2, 3, // second triangle
	}
)

type helloTriangle struct {
	prog *learngl.Program
	mesh *opengl.Mesh
}

// NewHelloTriangle draws an orange quad as two indexed triangles.
func NewHelloTriangle(env Env) (Scene, error) {
	prog, err := learngl.New(env.Driver, learngl.Source{
		Vertex:   helloVertexSource,
		Fragment: helloFragmentSource,
	}, learngl.WithLogger(env.logger()))
	if err != nil {
		return nil, err
	}

	mesh, err := opengl.NewMesh(quadPositions, quadIndices, []opengl.Attrib{{Location: 0, Size: 3}})
	if err != nil {
		prog.Delete()
		return nil, err
	}
	return &helloTriangle{prog: prog, mesh: mesh}, nil
}

func (s *helloTriangle) Draw(Frame) {
	clearScreen()
	s.prog.Use()
	s.mesh.Draw()
}

func (s *helloTriangle) Delete() {
	s.mesh.Delete()
	s.prog.Delete()
}

// clearScreen fills the framebuffer with the tutorial's teal background.
func clearScreen() {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
