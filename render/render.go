// Package render streams the triangles of generated meshes to consumers
// such as the binary STL writer.
package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/glmesh"
)

// Renderer reads triangles into dst. It returns io.EOF once every triangle
// has been read. Triangles returned along with io.EOF are valid.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (int, error)
}

// degenerateTol is the vertex distance under which a triangle is degenerate.
const degenerateTol = 1e-7

type meshRenderer struct {
	mesh *glmesh.Mesh
	// next is the first index of the next triangle to read.
	next int
}

// NewMeshRenderer returns a Renderer over the triangles of m. Degenerate
// triangles, such as the ones touching a sphere pole, are skipped since
// they carry no surface. m is validated and must not be modified while
// reading.
func NewMeshRenderer(m *glmesh.Mesh) (Renderer, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &meshRenderer{mesh: m}, nil
}

func (mr *meshRenderer) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	idx := mr.mesh.Indices
	for n < len(dst) && mr.next+2 < len(idx) {
		t := ms3.Triangle{
			mr.mesh.Vertex(int(idx[mr.next])),
			mr.mesh.Vertex(int(idx[mr.next+1])),
			mr.mesh.Vertex(int(idx[mr.next+2])),
		}
		mr.next += 3
		if t.IsDegenerate(degenerateTol) {
			continue
		}
		dst[n] = t
		n++
	}
	if mr.next+2 >= len(idx) {
		err = io.EOF
	}
	return n, err
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1024)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// MeshFromTriangles builds an unindexed mesh out of triangles, three
// vertices per triangle, with flat normals.
func MeshFromTriangles(model []ms3.Triangle) *glmesh.Mesh {
	m := &glmesh.Mesh{
		Positions: make([]float32, 0, 9*len(model)),
		Normals:   make([]float32, 0, 9*len(model)),
		Indices:   make([]uint32, 3*len(model)),
	}
	for _, t := range model {
		n := ms3.Unit(t.Normal())
		for _, v := range t {
			m.Positions = append(m.Positions, v.X, v.Y, v.Z)
			m.Normals = append(m.Normals, n.X, n.Y, n.Z)
		}
	}
	for i := range m.Indices {
		m.Indices[i] = uint32(i)
	}
	return m
}

func min(a, b int) int {
	if a <= b {
		return a
	}
	return b
}
