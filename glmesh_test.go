package glmesh_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/soypat/glmesh"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestStripToTriangles(t *testing.T) {
	got := glmesh.StripToTriangles([]uint32{0, 1, 2, 3, 4})
	want := []uint32{0, 1, 2, 1, 2, 3, 2, 3, 4}
	if !equalIndices(got, want) {
		t.Fatalf("got %v. want %v", got, want)
	}
	if err := glmesh.FixWinding(got); err != nil {
		t.Fatal(err)
	}
	want = []uint32{0, 1, 2, 1, 3, 2, 2, 3, 4}
	if !equalIndices(got, want) {
		t.Errorf("fixed winding got %v. want %v", got, want)
	}
	if got := glmesh.StripToTriangles([]uint32{0, 1}); got != nil {
		t.Errorf("short strip should yield no triangles, got %v", got)
	}
	err := glmesh.FixWinding([]uint32{0, 1, 2, 3})
	if !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter error, got %v", err)
	}
}

func TestOrbitPath(t *testing.T) {
	const radius = 2.0
	path, err := glmesh.OrbitPath(radius, 0.05, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 377 {
		t.Errorf("got %d samples. want 377", len(path))
	}
	if !r3EqualWithin(path[0], r3.Vec{X: radius}, 0) {
		t.Errorf("orbit should start on +X axis, got %v", path[0])
	}
	for i, p := range path {
		if !equalWithin(r3.Norm(p), radius, 1e-12) {
			t.Fatalf("sample %d at distance %g from center. want %g", i, r3.Norm(p), radius)
		}
		if p.Z != 0 {
			t.Fatalf("sample %d leaves orbital plane: %v", i, p)
		}
	}
	for _, test := range []struct{ radius, step, turns float64 }{
		{0, 0.05, 1},
		{1, 0, 1},
		{1, -0.05, 1},
		{1, 0.05, 0},
		{math.NaN(), 0.05, 1},
		{1, 1e-12, 1e6},
		{1, 1, 1e-12}, // Less than one sample.
	} {
		_, err := glmesh.OrbitPath(test.radius, test.step, test.turns)
		if !errors.Is(err, glmesh.ErrInvalidParameter) {
			t.Errorf("%+v: expected invalid parameter error, got %v", test, err)
		}
	}
}

func TestOrbitCursorWraps(t *testing.T) {
	path := make([]r3.Vec, 10)
	for i := range path {
		path[i] = r3.Vec{X: float64(i)}
	}
	c, err := glmesh.NewOrbitCursor(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 6, 9, 2, 5, 8, 1, 4, 7, 0, 3}
	for i, w := range want {
		center := c.Advance()
		if c.Pos() != w {
			t.Fatalf("advance %d: got position %d. want %d", i, c.Pos(), w)
		}
		if center != path[w] || c.Center() != path[w] {
			t.Fatalf("advance %d: center %v does not match table entry %v", i, center, path[w])
		}
	}
	c.Reset()
	if c.Pos() != 0 {
		t.Errorf("reset cursor at %d", c.Pos())
	}
	if c.Len() != len(path) {
		t.Errorf("got length %d. want %d", c.Len(), len(path))
	}
}

func TestOrbitCursorErrors(t *testing.T) {
	path, err := glmesh.OrbitPath(1, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	c, err := glmesh.NewOrbitCursor(path, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.At(len(path) - 1); err != nil {
		t.Errorf("last entry should be readable: %v", err)
	}
	for _, i := range []int{-1, len(path), len(path) + 100} {
		_, err := c.At(i)
		if !errors.Is(err, glmesh.ErrDomain) {
			t.Errorf("At(%d): expected domain error, got %v", i, err)
		}
		var gerr *glmesh.Error
		if !errors.As(err, &gerr) || !strings.HasSuffix(gerr.Op, "At") {
			t.Errorf("At(%d): error should name At as operation: %v", i, err)
		}
	}
	_, err = glmesh.NewOrbitCursor(path, len(path))
	if !errors.Is(err, glmesh.ErrDomain) {
		t.Errorf("stride equal to table length: expected domain error, got %v", err)
	}
	_, err = glmesh.NewOrbitCursor(nil, 1)
	if !errors.Is(err, glmesh.ErrDomain) {
		t.Errorf("empty table: expected domain error, got %v", err)
	}
	_, err = glmesh.NewOrbitCursor(path, 0)
	if !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("zero stride: expected invalid parameter error, got %v", err)
	}
}

func TestRotateInPlane(t *testing.T) {
	const tol = 1e-12
	in := []r3.Vec{{X: 1, Z: 5}, {X: -2, Y: 3, Z: -1}, {}}
	got := glmesh.RotateInPlane(in, math.Pi/2)
	if !r3EqualWithin(got[0], r3.Vec{Y: 1, Z: 5}, tol) {
		t.Errorf("got %v. want (0,1,5)", got[0])
	}
	if !r3EqualWithin(got[1], r3.Vec{X: -3, Y: -2, Z: -1}, tol) {
		t.Errorf("got %v. want (-3,-2,-1)", got[1])
	}
	for i := range in {
		if got[i].Z != in[i].Z {
			t.Errorf("vertex %d z changed from %g to %g", i, in[i].Z, got[i].Z)
		}
	}
	// Input untouched.
	if in[0] != (r3.Vec{X: 1, Z: 5}) {
		t.Errorf("input modified: %v", in[0])
	}
	spun := in
	for i := 0; i < 3; i++ {
		spun = glmesh.RotateInPlane(spun, 2*math.Pi/3)
	}
	for i := range in {
		if !r3EqualWithin(spun[i], in[i], 1e-9) {
			t.Errorf("full turn drifted vertex %d: %v != %v", i, spun[i], in[i])
		}
	}
	for _, angle := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := glmesh.RotateInPlane(in, angle); got != nil {
			t.Errorf("angle %g: got %v. want nil", angle, got)
		}
	}
}

func TestErrorNamesCalledFunction(t *testing.T) {
	for _, test := range []struct {
		op   string
		call func() error
	}{
		{"SphereIndices", func() error { _, err := glmesh.SphereIndices(0, 3); return err }},
		{"SphereStrip", func() error { _, err := glmesh.SphereStrip(0, 3); return err }},
		{"ResampleSphereAt", func() error { _, err := glmesh.ResampleSphereAt(4, 4, -1, r3.Vec{}); return err }},
		{"NewSphere", func() error { _, err := glmesh.NewSphere(4, 4, 0, r3.Vec{}); return err }},
		{"MobiusVertices", func() error { _, err := glmesh.MobiusVertices(0); return err }},
		{"MobiusIndices", func() error { _, err := glmesh.MobiusIndices(-1); return err }},
		{"NewMobius", func() error { _, err := glmesh.NewMobius(0); return err }},
		{"MobiusSamples", func() error { _, err := glmesh.MobiusSamples(0); return err }},
		{"NewSkybox", func() error { _, err := glmesh.NewSkybox(0); return err }},
		{"RotateBufferInPlane", func() error { return glmesh.RotateBufferInPlane(nil, math.NaN()) }},
		{"OrbitPath", func() error { _, err := glmesh.OrbitPath(1, 1, 1e-12); return err }},
		{"Mesh.Validate", func() error { return (&glmesh.Mesh{Positions: []float32{1}}).Validate() }},
	} {
		err := test.call()
		var gerr *glmesh.Error
		if !errors.As(err, &gerr) {
			t.Errorf("%s: expected *glmesh.Error, got %v", test.op, err)
			continue
		}
		if gerr.Op != test.op {
			t.Errorf("%s: error names %q as operation", test.op, gerr.Op)
		}
		if !strings.HasPrefix(err.Error(), "glmesh."+test.op+": ") {
			t.Errorf("%s: unexpected message %q", test.op, err.Error())
		}
	}
}

func TestRotateBufferInPlane(t *testing.T) {
	buf := []float32{1, 0, 5, 0, 2, -1}
	if err := glmesh.RotateBufferInPlane(buf, math.Pi); err != nil {
		t.Fatal(err)
	}
	want := []float32{-1, 0, 5, 0, -2, -1}
	for i := range buf {
		if !equalWithin(float64(buf[i]), float64(want[i]), 1e-6) {
			t.Fatalf("got %v. want %v", buf, want)
		}
	}
	if err := glmesh.RotateBufferInPlane(buf[:4], 1); !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter error, got %v", err)
	}
	if err := glmesh.RotateBufferInPlane(buf, math.Inf(-1)); !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter error, got %v", err)
	}
}

func TestColorRing(t *testing.T) {
	colors := []glmesh.Color{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}}
	ring, err := glmesh.NewColorRing(colors)
	if err != nil {
		t.Fatal(err)
	}
	colors[0] = glmesh.Color{} // Ring owns its copy.
	if ring.At(0) != (glmesh.Color{1, 0, 0, 1}) {
		t.Errorf("ring aliases input table")
	}
	ring.Rotate(1)
	if ring.At(0) != (glmesh.Color{0, 1, 0, 1}) || ring.At(2) != (glmesh.Color{1, 0, 0, 1}) {
		t.Errorf("rotate by one: got %v %v", ring.At(0), ring.At(2))
	}
	ring.Rotate(-2)
	if ring.Offset() != 2 || ring.At(0) != (glmesh.Color{0, 0, 1, 1}) {
		t.Errorf("rotate back by two: offset %d, first %v", ring.Offset(), ring.At(0))
	}
	ring.Rotate(3 * 1000)
	if ring.Offset() != 2 {
		t.Errorf("whole turns should not move ring, offset %d", ring.Offset())
	}
	dst := make([]float32, 10)
	dst[8], dst[9] = -1, -1
	ring.Fill(dst)
	want := []float32{0, 0, 1, 1, 1, 0, 0, 1, -1, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("fill got %v. want %v", dst, want)
		}
	}
	if _, err := glmesh.NewColorRing(nil); !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter error, got %v", err)
	}
	if len(glmesh.DefaultMobiusColors) != 192 {
		t.Errorf("default color table has %d entries. want 192", len(glmesh.DefaultMobiusColors))
	}
}

func TestSkyboxFacesInward(t *testing.T) {
	const size = 50
	m, err := glmesh.NewSkybox(size)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 36 || m.TriangleCount() != 12 {
		t.Fatalf("got %d vertices and %d triangles. want 36 and 12", m.VertexCount(), m.TriangleCount())
	}
	for i := 0; i < len(m.Indices); i += 3 {
		a := vertexAt(m.Positions, int(m.Indices[i]))
		b := vertexAt(m.Positions, int(m.Indices[i+1]))
		c := vertexAt(m.Positions, int(m.Indices[i+2]))
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		centroid := r3.Scale(1./3, r3.Add(a, r3.Add(b, c)))
		if r3.Dot(n, centroid) >= 0 {
			t.Errorf("triangle %d faces outwards", i/3)
		}
		for _, v := range []r3.Vec{a, b, c} {
			if math.Abs(v.X) != size || math.Abs(v.Y) != size || math.Abs(v.Z) != size {
				t.Fatalf("vertex %v not on cube corner", v)
			}
		}
	}
	if _, err := glmesh.SkyboxVertices(-1); !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter error, got %v", err)
	}
}

func TestMeshValidate(t *testing.T) {
	m, err := glmesh.NewSphere(4, 8, 1, r3.Vec{})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	bad := m.Clone()
	bad.Indices[5] = uint32(bad.VertexCount())
	if err := bad.Validate(); !errors.Is(err, glmesh.ErrDomain) {
		t.Errorf("out of range index: expected domain error, got %v", err)
	}
	if m.Indices[5] == bad.Indices[5] {
		t.Errorf("clone shares index buffer")
	}
	bad = m.Clone()
	bad.TexCoords = bad.TexCoords[:4]
	if err := bad.Validate(); !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("short texcoords: expected invalid parameter error, got %v", err)
	}
	bad = m.Clone()
	bad.Positions[7] = float32(math.NaN())
	if err := bad.Validate(); !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("NaN position: expected invalid parameter error, got %v", err)
	}
	bad = m.Clone()
	bad.Indices = bad.Indices[:len(bad.Indices)-1]
	if err := bad.Validate(); !errors.Is(err, glmesh.ErrInvalidParameter) {
		t.Errorf("partial triangle: expected invalid parameter error, got %v", err)
	}
}

func TestMeshBounds(t *testing.T) {
	const tol = 1e-6
	m, err := glmesh.NewSphere(8, 16, 0.5, r3.Vec{X: 1, Y: 2, Z: 3})
	if err != nil {
		t.Fatal(err)
	}
	bb := m.Bounds()
	min := r3.Vec{X: float64(bb.Min.X), Y: float64(bb.Min.Y), Z: float64(bb.Min.Z)}
	max := r3.Vec{X: float64(bb.Max.X), Y: float64(bb.Max.Y), Z: float64(bb.Max.Z)}
	if !r3EqualWithin(min, r3.Vec{X: 0.5, Y: 1.5, Z: 2.5}, tol) {
		t.Errorf("got min %v", min)
	}
	if !r3EqualWithin(max, r3.Vec{X: 1.5, Y: 2.5, Z: 3.5}, tol) {
		t.Errorf("got max %v", max)
	}
	tris := m.Triangles()
	if len(tris) != m.TriangleCount() {
		t.Errorf("got %d triangles. want %d", len(tris), m.TriangleCount())
	}
	if bb := new(glmesh.Mesh).Bounds(); bb.Min != bb.Max || bb.Min.X != 0 {
		t.Errorf("empty mesh bounds not zero: %v", bb)
	}
}

func TestAngleConversion(t *testing.T) {
	if got := glmesh.DtoR(180); !equalWithin(got, math.Pi, 1e-15) {
		t.Errorf("DtoR(180) got %g", got)
	}
	if got := glmesh.RtoD(math.Pi / 2); !equalWithin(got, 90, 1e-12) {
		t.Errorf("RtoD(π/2) got %g", got)
	}
}

func equalIndices(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
