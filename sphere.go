package glmesh

import (
	"math"

	"github.com/soypat/glmesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere grid sampling. Vertices are laid out stack major: vertex
// i*(slices+1)+j is sampled at stack i and slice j, with
//
//	theta = i*π/stacks   (0 at the +Z pole, π at the -Z pole)
//	phi   = j*2π/slices  (measured from +X towards +Y)
//
// Slice 0 and slice `slices` both sample phi=0 and phi=2π so texture
// coordinates can run from 0 to 1 across the seam.

// SphereVertexCount returns the number of vertices of a stacks×slices grid.
func SphereVertexCount(stacks, slices int) int {
	return (stacks + 1) * (slices + 1)
}

func validateGrid(op string, stacks, slices int) error {
	if stacks <= 0 || slices <= 0 {
		return invalidParam(op, "stacks and slices must be positive, got %d×%d", stacks, slices)
	}
	if uint64(stacks+1)*uint64(slices+1) > math.MaxUint32 {
		return invalidParam(op, "%d×%d grid overflows uint32 indices", stacks, slices)
	}
	return nil
}

func validateSphere(op string, stacks, slices int, radius float64) error {
	if err := validateGrid(op, stacks, slices); err != nil {
		return err
	}
	if !isFinite(radius) || radius <= 0 {
		return invalidParam(op, "radius must be positive and finite, got %g", radius)
	}
	return nil
}

// SphereVertices samples a sphere of the given radius centered at offset.
// It returns (stacks+1)*(slices+1) vertices as a flat xyz buffer.
func SphereVertices(stacks, slices int, radius float64, offset r3.Vec) ([]float32, error) {
	if err := validateSphere("SphereVertices", stacks, slices, radius); err != nil {
		return nil, err
	}
	if !d3.IsFinite(offset) {
		return nil, invalidParam("SphereVertices", "offset must be finite, got %v", offset)
	}
	return appendSphereVertices(make([]float32, 0, 3*SphereVertexCount(stacks, slices)), stacks, slices, radius, offset), nil
}

// ResampleSphereAt recomputes the vertices of a sphere centered at center.
// It samples the exact grid of SphereVertices so a sphere moved along an
// orbit matches a sphere built at the same position.
func ResampleSphereAt(stacks, slices int, radius float64, center r3.Vec) ([]float32, error) {
	v, err := SphereVertices(stacks, slices, radius, center)
	if err != nil {
		return nil, withOp("ResampleSphereAt", err)
	}
	return v, nil
}

// ResampleSphereInto is like ResampleSphereAt but writes into dst, which must
// hold exactly 3*(stacks+1)*(slices+1) floats. It avoids an allocation per tick.
func ResampleSphereInto(dst []float32, stacks, slices int, radius float64, center r3.Vec) error {
	const op = "ResampleSphereInto"
	if err := validateSphere(op, stacks, slices, radius); err != nil {
		return err
	}
	if !d3.IsFinite(center) {
		return invalidParam(op, "center must be finite, got %v", center)
	}
	if want := 3 * SphereVertexCount(stacks, slices); len(dst) != want {
		return domainErr(op, "destination holds %d floats, want %d", len(dst), want)
	}
	appendSphereVertices(dst[:0], stacks, slices, radius, center)
	return nil
}

func appendSphereVertices(dst []float32, stacks, slices int, radius float64, offset r3.Vec) []float32 {
	for i := 0; i <= stacks; i++ {
		theta := float64(i) * pi / float64(stacks)
		st, ct := math.Sincos(theta)
		for j := 0; j <= slices; j++ {
			phi := float64(j) * tau / float64(slices)
			sp, cp := math.Sincos(phi)
			dst = append(dst,
				float32(radius*cp*st+offset.X),
				float32(radius*sp*st+offset.Y),
				float32(radius*ct+offset.Z),
			)
		}
	}
	return dst
}

// SphereNormals returns the unit outward normal of every vertex of the grid.
func SphereNormals(stacks, slices int) ([]float32, error) {
	if err := validateGrid("SphereNormals", stacks, slices); err != nil {
		return nil, err
	}
	return appendSphereVertices(make([]float32, 0, 3*SphereVertexCount(stacks, slices)), stacks, slices, 1, r3.Vec{}), nil
}

// SphereTexCoords maps vertex (i, j) of the grid to (j/slices, 1-i/stacks)
// so the +Z pole is the top row of an equirectangular texture.
func SphereTexCoords(stacks, slices int) ([]float32, error) {
	if err := validateGrid("SphereTexCoords", stacks, slices); err != nil {
		return nil, err
	}
	uv := make([]float32, 0, 2*SphereVertexCount(stacks, slices))
	for i := 0; i <= stacks; i++ {
		for j := 0; j <= slices; j++ {
			uv = append(uv, float32(j)/float32(slices), 1-float32(i)/float32(stacks))
		}
	}
	return uv, nil
}

// SphereStrip returns one triangle strip per adjacent stack pair. Strip i
// alternates between stack i and stack i+1 along all slices:
//
//	(i,0) (i+1,0) (i,1) (i+1,1) ... (i,slices) (i+1,slices)
func SphereStrip(stacks, slices int) ([][]uint32, error) {
	if err := validateGrid("SphereStrip", stacks, slices); err != nil {
		return nil, err
	}
	row := uint32(slices + 1)
	strips := make([][]uint32, stacks)
	for i := range strips {
		strip := make([]uint32, 0, 2*row)
		top := uint32(i) * row
		for j := uint32(0); j < row; j++ {
			strip = append(strip, top+j, top+row+j)
		}
		strips[i] = strip
	}
	return strips, nil
}

// SphereIndices returns the triangle list of a stacks×slices sphere grid,
// 6*stacks*slices indices wound counter-clockwise seen from outside.
// Triangles touching the poles are degenerate since all vertices of the
// first and last stacks coincide.
func SphereIndices(stacks, slices int) ([]uint32, error) {
	strips, err := SphereStrip(stacks, slices)
	if err != nil {
		return nil, withOp("SphereIndices", err)
	}
	tris := make([]uint32, 0, 6*stacks*slices)
	for _, strip := range strips {
		// Every strip yields an even number of triangles so alternation
		// stays in phase across strips for FixWinding.
		tris = appendStripTriangles(tris, strip)
	}
	if err := FixWinding(tris); err != nil {
		return nil, withOp("SphereIndices", err)
	}
	return tris, nil
}

// NewSphere returns a textured sphere mesh with normals.
func NewSphere(stacks, slices int, radius float64, offset r3.Vec) (*Mesh, error) {
	pos, err := SphereVertices(stacks, slices, radius, offset)
	if err != nil {
		return nil, withOp("NewSphere", err)
	}
	norm, err := SphereNormals(stacks, slices)
	if err != nil {
		return nil, withOp("NewSphere", err)
	}
	uv, err := SphereTexCoords(stacks, slices)
	if err != nil {
		return nil, withOp("NewSphere", err)
	}
	idx, err := SphereIndices(stacks, slices)
	if err != nil {
		return nil, withOp("NewSphere", err)
	}
	return &Mesh{
		Positions: pos,
		Normals:   norm,
		TexCoords: uv,
		Indices:   idx,
	}, nil
}
