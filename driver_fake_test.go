package learngl_test

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
)

var (
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
	inDecl      = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?in\s+\w+\s+(\w+)\s*;`)
	outDecl     = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?out\s+\w+\s+(\w+)\s*;`)
	errorDecl   = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)
)

type fakeShader struct {
	stage  learngl.Stage
	source string
}

type fakeProgram struct {
	locations map[string]int32
	values    map[int32]any
}

// fakeDriver is an in-memory learngl.Driver. Sources fail to compile when
// they contain an #error directive or lack main, and fail to link when the
// fragment stage reads an input the vertex stage never writes.
type fakeDriver struct {
	next uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	current  uint32
	useCalls int
	lookups  int
	writes   int

	deletedShaders  map[uint32]int
	deletedPrograms map[uint32]int

	noHandles  bool   // Create* return 0
	silentLogs bool   // failures produce an empty info log
	warning    string // info log attached to successful compiles
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:         make(map[uint32]*fakeShader),
		programs:        make(map[uint32]*fakeProgram),
		deletedShaders:  make(map[uint32]int),
		deletedPrograms: make(map[uint32]int),
	}
}

func (d *fakeDriver) handle() uint32 {
	if d.noHandles {
		return 0
	}
	d.next++
	return d.next
}

func (d *fakeDriver) CreateShader(stage learngl.Stage) uint32 {
	h := d.handle()
	if h != 0 {
		d.shaders[h] = &fakeShader{stage: stage}
	}
	return h
}

func (d *fakeDriver) CompileShader(shader uint32, source string) (bool, string) {
	s := d.shaders[shader]
	s.source = source
	if m := errorDecl.FindStringSubmatch(source); m != nil {
		return false, d.log(fmt.Sprintf("ERROR: 0:1: '#error' : %s\n", m[1]))
	}
	if !strings.Contains(source, "void main") {
		return false, d.log("ERROR: 0:1: 'main' : function not defined\n")
	}
	return true, d.warning
}

func (d *fakeDriver) DeleteShader(shader uint32) {
	d.deletedShaders[shader]++
	delete(d.shaders, shader)
}

func (d *fakeDriver) CreateProgram() uint32 {
	h := d.handle()
	if h != 0 {
		d.programs[h] = &fakeProgram{
			locations: make(map[string]int32),
			values:    make(map[int32]any),
		}
	}
	return h
}

func (d *fakeDriver) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	var vertex, fragment string
	for _, h := range shaders {
		s := d.shaders[h]
		switch s.stage {
		case learngl.StageVertex:
			vertex = s.source
		case learngl.StageFragment:
			fragment = s.source
		}
	}

	written := make(map[string]bool)
	for _, m := range outDecl.FindAllStringSubmatch(vertex, -1) {
		written[m[1]] = true
	}
	for _, m := range inDecl.FindAllStringSubmatch(fragment, -1) {
		if !written[m[1]] {
			return false, d.log(fmt.Sprintf("ERROR: Input of fragment shader '%s' not written by vertex shader\n", m[1]))
		}
	}

	p := d.programs[program]
	for _, src := range []string{vertex, fragment} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, ok := p.locations[m[1]]; !ok {
				p.locations[m[1]] = int32(len(p.locations))
			}
		}
	}
	return true, ""
}

func (d *fakeDriver) log(msg string) string {
	if d.silentLogs {
		return ""
	}
	return msg
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	d.deletedPrograms[program]++
	delete(d.programs, program)
	if d.current == program {
		d.current = 0
	}
}

func (d *fakeDriver) UseProgram(program uint32) {
	d.useCalls++
	d.current = program
}

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	d.lookups++
	p, ok := d.programs[program]
	if !ok {
		return -1
	}
	loc, ok := p.locations[name]
	if !ok {
		return -1
	}
	return loc
}

func (d *fakeDriver) set(program uint32, location int32, v any) {
	p, ok := d.programs[program]
	if !ok || location < 0 {
		return
	}
	d.writes++
	p.values[location] = v
}

func (d *fakeDriver) ProgramUniform1i(program uint32, location int32, v int32) {
	d.set(program, location, v)
}

func (d *fakeDriver) ProgramUniform1f(program uint32, location int32, v float32) {
	d.set(program, location, v)
}

func (d *fakeDriver) ProgramUniform2f(program uint32, location int32, x, y float32) {
	d.set(program, location, mgl32.Vec2{x, y})
}

func (d *fakeDriver) ProgramUniform3f(program uint32, location int32, x, y, z float32) {
	d.set(program, location, mgl32.Vec3{x, y, z})
}

func (d *fakeDriver) ProgramUniform4f(program uint32, location int32, x, y, z, w float32) {
	d.set(program, location, mgl32.Vec4{x, y, z, w})
}

func (d *fakeDriver) ProgramUniformMatrix4(program uint32, location int32, m mgl32.Mat4) {
	d.set(program, location, m)
}

// value returns the uniform named name in program, or nil if unset.
func (d *fakeDriver) value(program uint32, name string) any {
	p, ok := d.programs[program]
	if !ok {
		return nil
	}
	loc, ok := p.locations[name]
	if !ok {
		return nil
	}
	return p.values[loc]
}

// liveProgram returns the only live program handle, or 0.
func (d *fakeDriver) liveProgram() uint32 {
	if len(d.programs) != 1 {
		return 0
	}
	for h := range d.programs {
		return h
	}
	return 0
}
