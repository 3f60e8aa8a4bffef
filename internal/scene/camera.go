package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

var cubeVertices = []float32{
	// positions     // texture coords
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,

	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}

// cubePositions are the world-space positions of the cubes.
var cubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

var cubeAxis = mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()

// Initial face mix and its change per second while Up or Down is held.
const (
	defaultFaceMix float32 = 0.2
	faceMixRate    float32 = 1.0
)

type cameraScene struct {
	shader    *shader
	mesh      *opengl.Mesh
	container *opengl.Texture
	face      *opengl.Texture
	camera    *learngl.Camera
	faceMix   float32 // weight of the face texture, in [0, 1]
}

// NewCamera draws ten textured cubes seen through a fly camera: WASD moves,
// the mouse looks around, the scroll wheel zooms and Up/Down change how
// much of the face texture shows.
func NewCamera(env Env) (Scene, error) {
	sh, err := loadShader(env, "camera.vert", "camera.frag")
	if err != nil {
		return nil, err
	}

	mesh, err := opengl.NewMesh(cubeVertices, nil, []opengl.Attrib{
		{Location: 0, Size: 3},
		{Location: 1, Size: 2},
	})
	if err != nil {
		sh.Delete()
		return nil, err
	}

	s := &cameraScene{
		shader:    sh,
		mesh:      mesh,
		container: loadTexture(env, "container.png", true),
		face:      loadTexture(env, "awesomeface.png", true),
		camera:    learngl.NewCamera(mgl32.Vec3{0, 0, 3}),
		faceMix:   defaultFaceMix,
	}
	s.bindSamplers()
	return s, nil
}

// CubeModel returns the model matrix of cube i.
func CubeModel(i int) mgl32.Mat4 {
	angle := mgl32.DegToRad(20 * float32(i))
	return mgl32.Translate3D(cubePositions[i].Elem()).Mul4(mgl32.HomogRotate3D(angle, cubeAxis))
}

func (s *cameraScene) bindSamplers() {
	s.shader.SetInt("texture1", 0)
	s.shader.SetInt("texture2", 1)
}

// adjustFaceMix moves the face weight while Up or Down is held.
func (s *cameraScene) adjustFaceMix(in *learngl.InputState, dt float32) {
	if in.KeyDown(learngl.KeyUp) {
		s.faceMix += faceMixRate * dt
	}
	if in.KeyDown(learngl.KeyDown) {
		s.faceMix -= faceMixRate * dt
	}
	s.faceMix = min(max(s.faceMix, 0), 1)
}

func (s *cameraScene) Draw(f Frame) {
	if s.shader.poll() {
		s.bindSamplers()
	}
	if f.Input != nil {
		s.camera.ProcessInput(f.Input, float32(f.Delta))
		s.adjustFaceMix(f.Input, float32(f.Delta))
	}

	aspect := f.Aspect
	if aspect <= 0 {
		aspect = 1
	}

	gl.Enable(gl.DEPTH_TEST)
	defer gl.Disable(gl.DEPTH_TEST)
	clearScreen()

	s.container.Bind(0)
	s.face.Bind(1)

	s.shader.Use()
	s.shader.SetMat4("projection", s.camera.ProjectionMatrix(aspect))
	s.shader.SetMat4("view", s.camera.ViewMatrix())
	s.shader.SetFloat("mixValue", s.faceMix)
	for i := range cubePositions {
		s.shader.SetMat4("model", CubeModel(i))
		s.mesh.Draw()
	}
}

func (s *cameraScene) Delete() {
	s.face.Delete()
	s.container.Delete()
	s.mesh.Delete()
	s.shader.Delete()
}
