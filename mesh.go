package bright

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex attribute locations of the mesh shader.
const (
	attribPosition = 0
	attribColor    = 1
)

// 3 floats for the position and 4 floats for the color.
const (
	vertexStride = 7 * 4
	colorOffset  = 3 * 4
)

// Mesh is a piece of triangular geometry with one RGBA color per vertex.
// Its vertex and index buffers are uploaded once at construction and are
// immutable afterwards. A mesh may be shared across renderers.
//
// Face indices are not validated; indices outside the vertex range produce
// undefined rendering output.
type Mesh struct {
	vertices []mgl32.Vec3
	faces    [][3]uint32
	colors   []mgl32.Vec4

	vao      uint32
	vbo      uint32
	ebo      uint32
	released bool
}

// NewMesh creates a mesh from vertex positions and triangular faces. A nil
// colors slice paints every vertex opaque white; otherwise colors must
// contain one color per vertex.
func NewMesh(vertices []mgl32.Vec3, faces [][3]uint32, colors []mgl32.Vec4) (*Mesh, error) {
	if colors == nil {
		colors = defaultColors(len(vertices))
	}
	if len(colors) != len(vertices) {
		return nil, fmt.Errorf("mesh has %d vertices but %d colors",
			len(vertices), len(colors))
	}

	m := &Mesh{
		vertices: append([]mgl32.Vec3(nil), vertices...),
		faces:    append([][3]uint32(nil), faces...),
		colors:   append([]mgl32.Vec4(nil), colors...),
	}

	data := interleave(m.vertices, m.colors)
	indices := make([]uint32, 0, 3*len(m.faces))
	for _, face := range m.faces {
		indices = append(indices, face[0], face[1], face[2])
	}

	// Each mesh has its own vertex array object.
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointerWithOffset(attribColor, 4, gl.FLOAT, false, vertexStride, colorOffset)

	gl.BindVertexArray(0)

	return m, nil
}

// Vertices returns the vertex positions of the mesh.
func (m *Mesh) Vertices() []mgl32.Vec3 { return m.vertices }

// Faces returns the triangular faces of the mesh as vertex index triples.
func (m *Mesh) Faces() [][3]uint32 { return m.faces }

// Colors returns the vertex colors of the mesh.
func (m *Mesh) Colors() []mgl32.Vec4 { return m.colors }

// Draw binds the vertex array of the mesh and issues an indexed draw of
// all its triangles. The active shader and framebuffer are untouched.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(3*len(m.faces)), gl.UNSIGNED_INT, 0)
}

// Release deletes the vertex array and both buffers. Calling Release more
// than once is a no-op.
func (m *Mesh) Release() {
	if m.released {
		return
	}
	m.released = true
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

// defaultColors returns one opaque white color per vertex.
func defaultColors(n int) []mgl32.Vec4 {
	colors := make([]mgl32.Vec4, n)
	for i := range colors {
		colors[i] = mgl32.Vec4{1, 1, 1, 1}
	}
	return colors
}

// interleave packs positions and colors into a single [x y z r g b a]
// buffer, one group of 7 floats per vertex.
func interleave(vertices []mgl32.Vec3, colors []mgl32.Vec4) []float32 {
	data := make([]float32, 0, 7*len(vertices))
	for i, v := range vertices {
		data = append(data, v[0], v[1], v[2])
		data = append(data, colors[i][0], colors[i][1], colors[i][2], colors[i][3])
	}
	return data
}
