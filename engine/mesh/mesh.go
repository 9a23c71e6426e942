// package mesh provides the basic GPU-resident shape meshes the scene script
// draws. Each shape interleaves position, normal, and texture coordinates in
// the layout the default shader program expects.
package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shape is one uploaded mesh. It satisfies the scene layer's Drawable
// interface: Draw issues the indexed draw call using whatever shader state is
// currently resident.
type Shape struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Draw binds the shape's vertex array and issues the indexed draw call.
func (s *Shape) Draw() {
	gl.BindVertexArray(s.vao)
	gl.DrawElements(gl.TRIANGLES, s.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// release frees the shape's GPU buffers.
func (s *Shape) release() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteBuffers(1, &s.ebo)
}

// library is the implementation of the Library interface.
type library struct {
	plane *Shape
	box   *Shape
}

// Library owns the scene's shape meshes. Shapes are uploaded lazily on first
// access and freed together by Release. Only one instance of each shape is
// kept no matter how many objects draw it.
type Library interface {
	// Plane returns the unit plane mesh: a quad in the XZ plane spanning
	// ±0.5 on each axis with a +Y normal.
	//
	// Returns:
	//   - *Shape: the plane mesh
	Plane() *Shape

	// Box returns the unit box mesh: an origin-centered cube spanning ±0.5
	// on each axis with per-face normals.
	//
	// Returns:
	//   - *Shape: the box mesh
	Box() *Shape

	// Release frees all uploaded shape buffers. Idempotent.
	Release()
}

var _ Library = &library{}

// NewLibrary creates an empty mesh Library. Requires a current GL context on
// the calling thread for all subsequent shape accesses.
//
// Returns:
//   - Library: the newly created library
func NewLibrary() Library {
	return &library{}
}

func (l *library) Plane() *Shape {
	if l.plane == nil {
		l.plane = upload(planeVertices, planeIndices)
	}
	return l.plane
}

func (l *library) Box() *Shape {
	if l.box == nil {
		l.box = upload(boxVertices, boxIndices)
	}
	return l.box
}

func (l *library) Release() {
	if l.plane != nil {
		l.plane.release()
		l.plane = nil
	}
	if l.box != nil {
		l.box.release()
		l.box = nil
	}
}

// upload creates a VAO with interleaved position(3) | normal(3) | uv(2)
// attributes and an element buffer.
func upload(vertices []float32, indices []uint32) *Shape {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return &Shape{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// planeVertices is a unit quad in the XZ plane: position | normal | uv.
var planeVertices = []float32{
	-0.5, 0, -0.5, 0, 1, 0, 0, 0,
	0.5, 0, -0.5, 0, 1, 0, 1, 0,
	0.5, 0, 0.5, 0, 1, 0, 1, 1,
	-0.5, 0, 0.5, 0, 1, 0, 0, 1,
}

var planeIndices = []uint32{
	0, 2, 1,
	0, 3, 2,
}

// boxVertices is an origin-centered unit cube with four vertices per face so
// each face carries its own normal: position | normal | uv.
var boxVertices = []float32{
	// front (+Z)
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	// back (-Z)
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	// right (+X)
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
	// left (-X)
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
	// top (+Y)
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	// bottom (-Y)
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
}

var boxIndices = []uint32{
	0, 1, 2, 0, 2, 3, // front
	4, 5, 6, 4, 6, 7, // back
	8, 9, 10, 8, 10, 11, // right
	12, 13, 14, 12, 14, 15, // left
	16, 17, 18, 16, 18, 19, // top
	20, 21, 22, 20, 22, 23, // bottom
}
