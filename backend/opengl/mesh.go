package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const sizeofFloat = 4

// Attrib describes one float vertex attribute: its shader location and its
// component count. Attributes are interleaved in the order given.
type Attrib struct {
	Location uint32
	Size     int32
}

// Mesh owns a vertex array with its vertex buffer and optional index buffer.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// NewMesh uploads interleaved float vertices laid out as layout. When
// indices is non-empty the mesh is drawn with an element buffer.
func NewMesh(vertices []float32, indices []uint32, layout []Attrib) (*Mesh, error) {
	if len(layout) == 0 {
		return nil, errors.New("mesh: empty vertex layout")
	}
	var floatsPerVertex int32
	for _, a := range layout {
		if a.Size < 1 || a.Size > 4 {
			return nil, fmt.Errorf("mesh: attribute %d has size %d", a.Location, a.Size)
		}
		floatsPerVertex += a.Size
	}
	if len(vertices) == 0 || len(vertices)%int(floatsPerVertex) != 0 {
		return nil, fmt.Errorf("mesh: %d floats is not a whole number of %d-float vertices",
			len(vertices), floatsPerVertex)
	}
	vertexCount := len(vertices) / int(floatsPerVertex)
	for i, idx := range indices {
		if int(idx) >= vertexCount {
			return nil, fmt.Errorf("mesh: index %d at position %d is out of range for %d vertices",
				idx, i, vertexCount)
		}
	}

	m := &Mesh{indexed: len(indices) > 0}
	if m.indexed {
		m.count = int32(len(indices))
	} else {
		m.count = int32(vertexCount)
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*sizeofFloat, gl.Ptr(vertices), gl.STATIC_DRAW)

	if m.indexed {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	stride := floatsPerVertex * sizeofFloat
	var offset uintptr
	for _, a := range layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(a.Location)
		offset += uintptr(a.Size) * sizeofFloat
	}

	// The element buffer binding is VAO state, so only the array buffer is
	// unbound here.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, nil
}

// Draw issues one triangle draw call for the whole mesh.
func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the mesh's GL objects. Calling it again has no effect.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
