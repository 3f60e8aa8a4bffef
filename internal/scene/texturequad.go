package scene

import (
	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

var texturedQuadVertices = []float32{
	// positions      // colors      // texture coords
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
}

var texturedQuadLayout = []opengl.Attrib{
	{Location: 0, Size: 3}, // position
	{Location: 1, Size: 3}, // color
	{Location: 2, Size: 2}, // texture coordinate
}

type textureQuad struct {
	shader  *shader
	mesh    *opengl.Mesh
	texture *opengl.Texture
	tint    bool // multiply the texture by the vertex colors
}

// NewTextureQuad maps assets/wall.png onto an indexed quad. Space toggles
// tinting by the per-vertex colors.
func NewTextureQuad(env Env) (Scene, error) {
	sh, err := loadShader(env, "texture.vert", "texture.frag")
	if err != nil {
		return nil, err
	}

	mesh, err := opengl.NewMesh(texturedQuadVertices, quadIndices, texturedQuadLayout)
	if err != nil {
		sh.Delete()
		return nil, err
	}

	s := &textureQuad{
		shader:  sh,
		mesh:    mesh,
		texture: loadTexture(env, "wall.png", true),
	}
	s.setUniforms()
	return s, nil
}

func (s *textureQuad) setUniforms() {
	s.shader.SetInt("ourTexture", 0)
	s.shader.SetBool("tintByColor", s.tint)
}

// toggleTint flips the tint on a Space press and reports whether it did.
func (s *textureQuad) toggleTint(in *learngl.InputState) bool {
	if in == nil || !in.KeyPressed(learngl.KeySpace) {
		return false
	}
	s.tint = !s.tint
	return true
}

func (s *textureQuad) Draw(f Frame) {
	if s.shader.poll() {
		s.setUniforms()
	}
	if s.toggleTint(f.Input) {
		s.shader.SetBool("tintByColor", s.tint)
	}
	clearScreen()
	s.texture.Bind(0)
	s.shader.Use()
	s.mesh.Draw()
}

func (s *textureQuad) Delete() {
	s.texture.Delete()
	s.mesh.Delete()
	s.shader.Delete()
}
