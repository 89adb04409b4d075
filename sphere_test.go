package glmesh_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/soypat/glmesh"
	"gonum.org/v1/gonum/spatial/r3"
)

var sphereGrids = []struct{ stacks, slices int }{
	{1, 1}, {1, 3}, {2, 2}, {3, 7}, {8, 16}, {16, 8}, {20, 40}, {33, 5},
}

func TestSphereVerticesExample(t *testing.T) {
	const tol = 1e-6
	v, err := glmesh.SphereVertices(8, 16, 0.5, r3.Vec{})
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 153*3 {
		t.Fatalf("got %d floats. want %d", len(v), 153*3)
	}
	north := vertexAt(v, 0)
	if !r3EqualWithin(north, r3.Vec{Z: 0.5}, tol) {
		t.Errorf("north pole got %v", north)
	}
	south := vertexAt(v, 152)
	if !r3EqualWithin(south, r3.Vec{Z: -0.5}, tol) {
		t.Errorf("south pole got %v", south)
	}
}

func TestSphereBufferSizes(t *testing.T) {
	for _, g := range sphereGrids {
		nv := (g.stacks + 1) * (g.slices + 1)
		v, err := glmesh.SphereVertices(g.stacks, g.slices, 1.5, r3.Vec{X: 1})
		if err != nil {
			t.Fatal(err)
		}
		if len(v) != 3*nv {
			t.Errorf("%dx%d: got %d position floats. want %d", g.stacks, g.slices, len(v), 3*nv)
		}
		uv, err := glmesh.SphereTexCoords(g.stacks, g.slices)
		if err != nil {
			t.Fatal(err)
		}
		if len(uv) != 2*nv {
			t.Errorf("%dx%d: got %d texcoord floats. want %d", g.stacks, g.slices, len(uv), 2*nv)
		}
		n, err := glmesh.SphereNormals(g.stacks, g.slices)
		if err != nil {
			t.Fatal(err)
		}
		if len(n) != 3*nv {
			t.Errorf("%dx%d: got %d normal floats. want %d", g.stacks, g.slices, len(n), 3*nv)
		}
		for i := 0; i < nv; i++ {
			if norm := r3.Norm(vertexAt(n, i)); !equalWithin(norm, 1, 1e-6) {
				t.Fatalf("%dx%d: normal %d has length %g", g.stacks, g.slices, i, norm)
			}
		}
	}
}

func TestSphereIndicesInRange(t *testing.T) {
	for _, g := range sphereGrids {
		idx, err := glmesh.SphereIndices(g.stacks, g.slices)
		if err != nil {
			t.Fatal(err)
		}
		if len(idx)%3 != 0 {
			t.Errorf("%dx%d: index count %d not a multiple of 3", g.stacks, g.slices, len(idx))
		}
		if want := 6 * g.stacks * g.slices; len(idx) != want {
			t.Errorf("%dx%d: got %d indices. want %d", g.stacks, g.slices, len(idx), want)
		}
		nv := uint32(glmesh.SphereVertexCount(g.stacks, g.slices))
		for i, v := range idx {
			if v >= nv {
				t.Fatalf("%dx%d: index %d=%d out of range %d", g.stacks, g.slices, i, v, nv)
			}
		}
	}
}

func TestSphereSeamCloses(t *testing.T) {
	const tol = 1e-6
	for _, g := range sphereGrids {
		v, err := glmesh.SphereVertices(g.stacks, g.slices, 2, r3.Vec{X: -1, Y: 3, Z: 0.5})
		if err != nil {
			t.Fatal(err)
		}
		row := g.slices + 1
		for i := 0; i <= g.stacks; i++ {
			first := vertexAt(v, i*row)
			last := vertexAt(v, i*row+g.slices)
			if !r3EqualWithin(first, last, tol) {
				t.Errorf("%dx%d: stack %d seam open: %v != %v", g.stacks, g.slices, i, first, last)
			}
		}
	}
}

func TestSphereWindingOutward(t *testing.T) {
	center := r3.Vec{X: 0.3, Y: -2, Z: 1}
	for _, g := range sphereGrids {
		if g.slices < 3 || g.stacks < 2 {
			// Flat sphere or both stacks collapsed to poles.
			continue
		}
		m, err := glmesh.NewSphere(g.stacks, g.slices, 1, center)
		if err != nil {
			t.Fatal(err)
		}
		checked := 0
		for i := 0; i < len(m.Indices); i += 3 {
			a := vertexAt(m.Positions, int(m.Indices[i]))
			b := vertexAt(m.Positions, int(m.Indices[i+1]))
			c := vertexAt(m.Positions, int(m.Indices[i+2]))
			n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
			if r3.Norm(n) < 1e-9 {
				continue // Pole triangles are degenerate.
			}
			centroid := r3.Scale(1./3, r3.Add(a, r3.Add(b, c)))
			if r3.Dot(n, r3.Sub(centroid, center)) <= 0 {
				t.Fatalf("%dx%d: triangle %d wound inwards", g.stacks, g.slices, i/3)
			}
			checked++
		}
		if checked == 0 {
			t.Errorf("%dx%d: no triangles checked", g.stacks, g.slices)
		}
	}
}

func TestSphereTexCoords(t *testing.T) {
	uv, err := glmesh.SphereTexCoords(4, 8)
	if err != nil {
		t.Fatal(err)
	}
	// First vertex: top left of texture.
	if uv[0] != 0 || uv[1] != 1 {
		t.Errorf("first texcoord got (%g,%g). want (0,1)", uv[0], uv[1])
	}
	// Last vertex: bottom right.
	n := len(uv)
	if uv[n-2] != 1 || uv[n-1] != 0 {
		t.Errorf("last texcoord got (%g,%g). want (1,0)", uv[n-2], uv[n-1])
	}
	// Stack 2, slice 3.
	i := 2*9 + 3
	if !equalWithin(float64(uv[2*i]), 3./8, 1e-7) || !equalWithin(float64(uv[2*i+1]), 0.5, 1e-7) {
		t.Errorf("texcoord (2,3) got (%g,%g)", uv[2*i], uv[2*i+1])
	}
}

func TestSphereInvalidParameters(t *testing.T) {
	for _, test := range []struct {
		stacks, slices int
		radius         float64
	}{
		{0, 16, 1},
		{8, 0, 1},
		{-1, 16, 1},
		{8, 16, 0},
		{8, 16, -0.5},
		{8, 16, math.NaN()},
		{8, 16, math.Inf(1)},
	} {
		_, err := glmesh.SphereVertices(test.stacks, test.slices, test.radius, r3.Vec{})
		if !errors.Is(err, glmesh.ErrInvalidParameter) {
			t.Errorf("%+v: expected invalid parameter error, got %v", test, err)
		}
	}
	_, err := glmesh.SphereIndices(0, 3)
	if !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter error, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "SphereIndices") {
		t.Errorf("error should name failing operation: %v", err)
	}
	_, err = glmesh.SphereVertices(2, 2, 1, r3.Vec{X: math.NaN()})
	if !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter error for NaN offset, got %v", err)
	}
}

func TestResampleMatchesStatic(t *testing.T) {
	center := r3.Vec{X: 1.25, Y: -0.75, Z: 0.1}
	static, err := glmesh.SphereVertices(8, 16, 0.2, center)
	if err != nil {
		t.Fatal(err)
	}
	resampled, err := glmesh.ResampleSphereAt(8, 16, 0.2, center)
	if err != nil {
		t.Fatal(err)
	}
	into := make([]float32, len(static))
	err = glmesh.ResampleSphereInto(into, 8, 16, 0.2, center)
	if err != nil {
		t.Fatal(err)
	}
	for i := range static {
		if static[i] != resampled[i] || static[i] != into[i] {
			t.Fatalf("float %d differs: static %g, resampled %g, into %g", i, static[i], resampled[i], into[i])
		}
	}
	err = glmesh.ResampleSphereInto(into[:3], 8, 16, 0.2, center)
	if !errors.Is(err, glmesh.ErrDomain) {
		t.Errorf("expected domain error for short buffer, got %v", err)
	}
}

func vertexAt(buf []float32, i int) r3.Vec {
	return r3.Vec{X: float64(buf[3*i]), Y: float64(buf[3*i+1]), Z: float64(buf[3*i+2])}
}

func r3EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func equalWithin(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
