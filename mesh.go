package glmesh

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Mesh is an indexed triangle mesh stored as flat GPU-ready buffers.
// Normals, TexCoords and Colors are optional; when set they hold one entry
// per vertex in Positions.
type Mesh struct {
	// Positions holds xyz triples.
	Positions []float32
	// Normals holds xyz triples.
	Normals []float32
	// TexCoords holds uv pairs.
	TexCoords []float32
	// Colors holds rgba quadruples.
	Colors []float32
	// Indices is a triangle list into the vertex buffers.
	Indices []uint32
}

// VertexCount returns the number of vertices in m.
func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles in m.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Validate checks buffer lengths agree with the vertex count, all floats are
// finite, the index list is a triangle list and every index is in range.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return invalidParam("Mesh.Validate", "position buffer length %d not a multiple of 3", len(m.Positions))
	}
	nv := m.VertexCount()
	for _, attr := range []struct {
		name string
		buf  []float32
		size int
	}{
		{"normal", m.Normals, 3},
		{"texcoord", m.TexCoords, 2},
		{"color", m.Colors, 4},
	} {
		if attr.buf != nil && len(attr.buf) != attr.size*nv {
			return invalidParam("Mesh.Validate", "%s buffer length %d, want %d for %d vertices", attr.name, len(attr.buf), attr.size*nv, nv)
		}
		if i := firstNonFinite(attr.buf); i >= 0 {
			return invalidParam("Mesh.Validate", "%s buffer has non finite value at %d", attr.name, i)
		}
	}
	if i := firstNonFinite(m.Positions); i >= 0 {
		return invalidParam("Mesh.Validate", "position buffer has non finite value at %d", i)
	}
	if len(m.Indices)%3 != 0 {
		return invalidParam("Mesh.Validate", "index count %d not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= nv {
			return domainErr("Mesh.Validate", "index %d at %d out of range for %d vertices", idx, i, nv)
		}
	}
	return nil
}

func firstNonFinite(buf []float32) int {
	for i, f := range buf {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return i
		}
	}
	return -1
}

// Vertex returns the position of the i'th vertex.
func (m *Mesh) Vertex(i int) ms3.Vec {
	return ms3.Vec{X: m.Positions[3*i], Y: m.Positions[3*i+1], Z: m.Positions[3*i+2]}
}

// Triangles resolves the index list into triangles. m must be valid.
func (m *Mesh) Triangles() []ms3.Triangle {
	return m.AppendTriangles(make([]ms3.Triangle, 0, m.TriangleCount()))
}

// AppendTriangles appends the resolved triangles of m to dst.
func (m *Mesh) AppendTriangles(dst []ms3.Triangle) []ms3.Triangle {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		dst = append(dst, ms3.Triangle{
			m.Vertex(int(m.Indices[i])),
			m.Vertex(int(m.Indices[i+1])),
			m.Vertex(int(m.Indices[i+2])),
		})
	}
	return dst
}

// Bounds returns the axis aligned bounding box of the vertices of m.
// It returns the zero Box for a mesh with no vertices.
func (m *Mesh) Bounds() ms3.Box {
	nv := m.VertexCount()
	if nv == 0 {
		return ms3.Box{}
	}
	bb := ms3.Box{Min: m.Vertex(0), Max: m.Vertex(0)}
	for i := 1; i < nv; i++ {
		v := m.Vertex(i)
		bb.Min = ms3.MinElem(bb.Min, v)
		bb.Max = ms3.MaxElem(bb.Max, v)
	}
	return bb
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Positions: cloneF32(m.Positions),
		Normals:   cloneF32(m.Normals),
		TexCoords: cloneF32(m.TexCoords),
		Colors:    cloneF32(m.Colors),
		Indices:   append([]uint32(nil), m.Indices...),
	}
}

func cloneF32(s []float32) []float32 {
	if s == nil {
		return nil
	}
	return append([]float32(nil), s...)
}
