package learngl

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Program owns one linked shader program on the device.
//
// A Program only exists in the linked state: New returns an error instead of
// a half-built value. Delete releases the device object exactly once, after
// which Use and every setter are no-ops.
type Program struct {
	driver    Driver
	id        uint32
	cache     bool
	locations map[string]int32
	log       logrus.FieldLogger
}

// New compiles src and links it into a program.
func New(d Driver, src Source, opts ...Option) (*Program, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Program{
		driver: d,
		cache:  cfg.locationCache,
		log:    cfg.logger,
	}

	id, err := p.build(src)
	if err != nil {
		return nil, err
	}
	p.id = id
	p.resetLocations()
	return p, nil
}

// Load reads the two stages from fsys and links them.
func Load(d Driver, fsys fs.FS, vertexPath, fragmentPath string, opts ...Option) (*Program, error) {
	src, err := LoadSource(fsys, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	p, err := New(d, src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

// build compiles and links src, returning the program handle. Stage handles
// never outlive the call.
func (p *Program) build(src Source) (uint32, error) {
	vs, err := p.compile(StageVertex, src.Vertex)
	if err != nil {
		return 0, err
	}
	defer p.driver.DeleteShader(vs)

	fsh, err := p.compile(StageFragment, src.Fragment)
	if err != nil {
		return 0, err
	}
	defer p.driver.DeleteShader(fsh)

	program := p.driver.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("create program: %w", ErrNoHandle)
	}
	ok, info := p.driver.LinkProgram(program, vs, fsh)
	if !ok {
		p.driver.DeleteProgram(program)
		return 0, &LinkError{Log: diagnostic(info)}
	}

	p.log.WithField("program", program).Debug("shader program linked")
	return program, nil
}

func (p *Program) compile(stage Stage, source string) (uint32, error) {
	shader := p.driver.CreateShader(stage)
	if shader == 0 {
		return 0, fmt.Errorf("create %s shader: %w", stage, ErrNoHandle)
	}

	ok, info := p.driver.CompileShader(shader, source)
	if !ok {
		p.driver.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: diagnostic(info)}
	}
	if d := diagnostic(info); d != noDiagnostic {
		p.log.WithField("stage", stage).Debugf("shader compiled with warnings: %s", d)
	}
	return shader, nil
}

// Use makes the program current for subsequent draw calls.
func (p *Program) Use() {
	if p.id == 0 {
		return
	}
	p.driver.UseProgram(p.id)
}

// Reload replaces the program with one built from src. On failure the
// current program is left untouched and the error is returned. After a
// successful reload the caller must Use the program again.
func (p *Program) Reload(src Source) error {
	if p.id == 0 {
		return ErrReleased
	}
	id, err := p.build(src)
	if err != nil {
		return err
	}
	p.driver.DeleteProgram(p.id)
	p.id = id
	p.resetLocations()
	return nil
}

// Delete releases the program. Calling it again has no effect.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.driver.DeleteProgram(p.id)
	p.id = 0
	p.locations = nil
}

// Released reports whether Delete has been called.
func (p *Program) Released() bool {
	return p.id == 0
}

func (p *Program) resetLocations() {
	if p.cache {
		p.locations = make(map[string]int32)
	}
}

// location resolves name, returning -1 for names the program does not use
// and for released programs.
func (p *Program) location(name string) int32 {
	if p.id == 0 {
		return -1
	}
	if !p.cache {
		return p.driver.UniformLocation(p.id, name)
	}
	loc, ok := p.locations[name]
	if !ok {
		loc = p.driver.UniformLocation(p.id, name)
		p.locations[name] = loc
	}
	return loc
}

// SetBool sets a bool uniform. Unknown names are ignored, matching the
// driver's handling of location -1.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc != -1 {
		p.driver.ProgramUniform1i(p.id, loc, v)
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc != -1 {
		p.driver.ProgramUniform1f(p.id, loc, v)
	}
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.location(name); loc != -1 {
		p.driver.ProgramUniform2f(p.id, loc, v[0], v[1])
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc != -1 {
		p.driver.ProgramUniform3f(p.id, loc, v[0], v[1], v[2])
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.location(name); loc != -1 {
		p.driver.ProgramUniform4f(p.id, loc, v[0], v[1], v[2], v[3])
	}
}

// SetMat4 sets a mat4 uniform. The matrix is column-major, as mgl32 stores it.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.location(name); loc != -1 {
		p.driver.ProgramUniformMatrix4(p.id, loc, m)
	}
}
