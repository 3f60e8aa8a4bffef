package learngl_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/learngl"
)

const passthroughVertex = `#version 410 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos, 1.0);
}
`

const constantFragment = `#version 410 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const uniformFragment = `#version 410 core
out vec4 FragColor;
uniform vec4 ourColor;
uniform float intensity;
uniform int mode;
uniform bool enabled;
uniform vec2 offset;
uniform vec3 tint;
uniform mat4 transform;
void main()
{
    FragColor = ourColor * intensity;
}
`

// colorFragment reads an input the passthrough vertex stage does not write.
const colorFragment = `#version 410 core
in vec3 ourColor;
out vec4 FragColor;
void main()
{
    FragColor = vec4(ourColor, 1.0);
}
`

func quietLogger() logrus.FieldLogger {
	logger, _ := logtest.NewNullLogger()
	return logger
}

func newProgram(t *testing.T, d *fakeDriver, fragment string, opts ...learngl.Option) *learngl.Program {
	t.Helper()
	opts = append([]learngl.Option{learngl.WithLogger(quietLogger())}, opts...)
	p, err := learngl.New(d, learngl.Source{Vertex: passthroughVertex, Fragment: fragment}, opts...)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestNewLinksProgram(t *testing.T) {
	d := newFakeDriver()
	p := newProgram(t, d, constantFragment)

	assert.False(t, p.Released())
	assert.Len(t, d.programs, 1, "exactly one linked program")
	assert.Empty(t, d.shaders, "stage handles are released after linking")
	assert.Len(t, d.deletedShaders, 2)
}

func TestNewVertexCompileError(t *testing.T) {
	d := newFakeDriver()
	src := learngl.Source{
		Vertex:   "#version 410 core\n#error unexpected token\nvoid main() {}\n",
		Fragment: constantFragment,
	}

	p, err := learngl.New(d, src, learngl.WithLogger(quietLogger()))
	require.Error(t, err)
	assert.Nil(t, p)

	var cerr *learngl.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, learngl.StageVertex, cerr.Stage)
	assert.Contains(t, cerr.Log, "unexpected token")
	assert.Contains(t, err.Error(), "vertex shader compilation failed")

	assert.Empty(t, d.shaders, "failed stage is released")
	assert.Empty(t, d.programs, "nothing is linked")
}

func TestNewFragmentCompileError(t *testing.T) {
	d := newFakeDriver()
	src := learngl.Source{
		Vertex:   passthroughVertex,
		Fragment: "#version 410 core\nout vec4 FragColor;\n",
	}

	_, err := learngl.New(d, src, learngl.WithLogger(quietLogger()))

	var cerr *learngl.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, learngl.StageFragment, cerr.Stage)
	assert.NotEmpty(t, cerr.Log)
	assert.Empty(t, d.shaders, "vertex stage is released when the fragment stage fails")
	assert.Empty(t, d.programs)
}

func TestNewLinkError(t *testing.T) {
	d := newFakeDriver()
	src := learngl.Source{Vertex: passthroughVertex, Fragment: colorFragment}

	p, err := learngl.New(d, src, learngl.WithLogger(quietLogger()))
	assert.Nil(t, p)

	var lerr *learngl.LinkError
	require.True(t, errors.As(err, &lerr))
	assert.Contains(t, lerr.Log, "ourColor")

	assert.Empty(t, d.shaders, "stages are released after a failed link")
	assert.Empty(t, d.programs, "the failed program is released")
	assert.Len(t, d.deletedPrograms, 1)
}

func TestNewEmptyDiagnostic(t *testing.T) {
	d := newFakeDriver()
	d.silentLogs = true
	src := learngl.Source{Vertex: "#error\n", Fragment: constantFragment}

	_, err := learngl.New(d, src, learngl.WithLogger(quietLogger()))

	var cerr *learngl.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "no diagnostic available", cerr.Log)
}

func TestNewNoHandle(t *testing.T) {
	d := newFakeDriver()
	d.noHandles = true

	_, err := learngl.New(d, learngl.Source{Vertex: passthroughVertex, Fragment: constantFragment},
		learngl.WithLogger(quietLogger()))
	assert.ErrorIs(t, err, learngl.ErrNoHandle)
}

func TestNewLogsCompileWarnings(t *testing.T) {
	d := newFakeDriver()
	d.warning = "WARNING: 0:3: implicit cast\n"
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p, err := learngl.New(d, learngl.Source{Vertex: passthroughVertex, Fragment: constantFragment},
		learngl.WithLogger(logger))
	require.NoError(t, err)
	defer p.Delete()

	var warnings int
	for _, e := range hook.AllEntries() {
		if e.Message == "shader compiled with warnings: WARNING: 0:3: implicit cast" {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
	assert.Equal(t, "shader program linked", hook.LastEntry().Message)
}

func TestUseIsIdempotent(t *testing.T) {
	d := newFakeDriver()
	p := newProgram(t, d, constantFragment)
	id := d.liveProgram()

	p.Use()
	p.Use()
	p.Use()

	assert.Equal(t, id, d.current)
	assert.Equal(t, 3, d.useCalls)
}

func TestSetters(t *testing.T) {
	d := newFakeDriver()
	p := newProgram(t, d, uniformFragment)
	id := d.liveProgram()
	m := mgl32.Translate3D(1, 2, 3)

	p.SetVec4("ourColor", mgl32.Vec4{0, 0.5, 0, 1})
	p.SetFloat("intensity", 0.75)
	p.SetInt("mode", 3)
	p.SetBool("enabled", true)
	p.SetVec2("offset", mgl32.Vec2{0.1, 0.2})
	p.SetVec3("tint", mgl32.Vec3{1, 0, 1})
	p.SetMat4("transform", m)

	assert.Equal(t, mgl32.Vec4{0, 0.5, 0, 1}, d.value(id, "ourColor"))
	assert.Equal(t, float32(0.75), d.value(id, "intensity"))
	assert.Equal(t, int32(3), d.value(id, "mode"))
	assert.Equal(t, int32(1), d.value(id, "enabled"))
	assert.Equal(t, mgl32.Vec2{0.1, 0.2}, d.value(id, "offset"))
	assert.Equal(t, mgl32.Vec3{1, 0, 1}, d.value(id, "tint"))
	assert.Equal(t, m, d.value(id, "transform"))

	p.SetBool("enabled", false)
	assert.Equal(t, int32(0), d.value(id, "enabled"))
}

func TestSetUniformDoesNotRequireUse(t *testing.T) {
	d := newFakeDriver()
	a := newProgram(t, d, uniformFragment)
	b := newProgram(t, d, uniformFragment)

	b.Use()
	a.SetFloat("intensity", 2)

	ids := make([]uint32, 0, 2)
	for h := range d.programs {
		ids = append(ids, h)
	}
	require.Len(t, ids, 2)
	var set int
	for _, h := range ids {
		if d.value(h, "intensity") == float32(2) {
			set++
			assert.NotEqual(t, d.current, h, "value lands in a, not the current program")
		}
	}
	assert.Equal(t, 1, set)
}

func TestSetUnknownUniformIsNoop(t *testing.T) {
	d := newFakeDriver()
	p := newProgram(t, d, uniformFragment)
	id := d.liveProgram()

	p.SetVec4("ourColor", mgl32.Vec4{1, 0, 0, 1})
	writes := d.writes

	p.SetVec4("notAUniform", mgl32.Vec4{0, 1, 0, 1})
	p.SetFloat("missing", 1)
	p.SetInt("", 7)
	p.SetMat4("nope", mgl32.Ident4())

	assert.Equal(t, writes, d.writes, "no driver writes for unknown names")
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, d.value(id, "ourColor"))
}

func TestLocationCache(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		d := newFakeDriver()
		p := newProgram(t, d, uniformFragment)
		for i := 0; i < 10; i++ {
			p.SetFloat("intensity", float32(i))
			p.SetFloat("missing", float32(i))
		}
		assert.Equal(t, 2, d.lookups)
	})

	t.Run("uncached", func(t *testing.T) {
		d := newFakeDriver()
		p := newProgram(t, d, uniformFragment, learngl.WithLocationCache(false))
		for i := 0; i < 10; i++ {
			p.SetFloat("intensity", float32(i))
		}
		assert.Equal(t, 10, d.lookups)
		assert.Equal(t, float32(9), d.value(d.liveProgram(), "intensity"))
	})
}

func TestDeleteReleasesOnce(t *testing.T) {
	d := newFakeDriver()
	p := newProgram(t, d, uniformFragment)
	id := d.liveProgram()

	p.Delete()
	p.Delete()

	assert.True(t, p.Released())
	assert.Equal(t, 1, d.deletedPrograms[id])
	assert.Empty(t, d.programs)

	uses, lookups := d.useCalls, d.lookups
	p.Use()
	p.SetFloat("intensity", 1)
	assert.Equal(t, uses, d.useCalls, "Use after Delete does nothing")
	assert.Equal(t, lookups, d.lookups, "setters after Delete do nothing")
}

func TestReload(t *testing.T) {
	d := newFakeDriver()
	p := newProgram(t, d, constantFragment)
	old := d.liveProgram()

	err := p.Reload(learngl.Source{Vertex: passthroughVertex, Fragment: uniformFragment})
	require.NoError(t, err)

	id := d.liveProgram()
	assert.NotEqual(t, old, id)
	assert.Equal(t, 1, d.deletedPrograms[old])

	p.SetFloat("intensity", 0.5)
	assert.Equal(t, float32(0.5), d.value(id, "intensity"), "cache is rebuilt for the new program")
}

func TestReloadFailureKeepsProgram(t *testing.T) {
	d := newFakeDriver()
	p := newProgram(t, d, uniformFragment)
	id := d.liveProgram()

	err := p.Reload(learngl.Source{Vertex: passthroughVertex, Fragment: colorFragment})
	var lerr *learngl.LinkError
	require.True(t, errors.As(err, &lerr))

	assert.Equal(t, id, d.liveProgram())
	p.Use()
	assert.Equal(t, id, d.current)
	p.SetFloat("intensity", 4)
	assert.Equal(t, float32(4), d.value(id, "intensity"))
}

func TestReloadReleased(t *testing.T) {
	d := newFakeDriver()
	p := newProgram(t, d, constantFragment)
	p.Delete()

	err := p.Reload(learngl.Source{Vertex: passthroughVertex, Fragment: constantFragment})
	assert.ErrorIs(t, err, learngl.ErrReleased)
	assert.Empty(t, d.programs)
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/shader.vert": {Data: []byte(passthroughVertex)},
		"shaders/shader.frag": {Data: []byte(constantFragment)},
		"shaders/broken.frag": {Data: []byte(colorFragment)},
	}

	t.Run("ok", func(t *testing.T) {
		d := newFakeDriver()
		p, err := learngl.Load(d, fsys, "shaders/shader.vert", "shaders/shader.frag",
			learngl.WithLogger(quietLogger()))
		require.NoError(t, err)
		p.Delete()
	})

	t.Run("missing file", func(t *testing.T) {
		d := newFakeDriver()
		_, err := learngl.Load(d, fsys, "shaders/shader.vert", "shaders/missing.frag")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.frag")
		assert.Empty(t, d.shaders)
	})

	t.Run("link error names files", func(t *testing.T) {
		d := newFakeDriver()
		_, err := learngl.Load(d, fsys, "shaders/shader.vert", "shaders/broken.frag",
			learngl.WithLogger(quietLogger()))
		var lerr *learngl.LinkError
		require.True(t, errors.As(err, &lerr))
		assert.Contains(t, err.Error(), "broken.frag")
	})
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", learngl.StageVertex.String())
	assert.Equal(t, "fragment", learngl.StageFragment.String())
	assert.Equal(t, "unknown", learngl.Stage(7).String())
}
