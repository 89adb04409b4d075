package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

func TestZeroTransformIsIdentity(t *testing.T) {
	v := r3.Vec{X: 1.5, Y: -2, Z: 7}
	if got := (Transform{}).Transform(v); got != v {
		t.Errorf("identity moved %v to %v", v, got)
	}
	if !NewTransform([]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}).equals(Transform{}, tol) {
		t.Error("row major identity is not the zero Transform")
	}
}

func TestRotationZ(t *testing.T) {
	got := RotationZ(math.Pi / 2).Transform(r3.Vec{X: 1, Z: 7})
	if !equalWithin(got, r3.Vec{Y: 1, Z: 7}, tol) {
		t.Errorf("got %v. want (0,1,7)", got)
	}
	if !RotationZ(2 * math.Pi).equals(Transform{}, tol) {
		t.Errorf("full turn should be identity, got %v", RotationZ(2*math.Pi).SliceCopy())
	}
	// Z is never mixed into the plane.
	buf := []float32{0.3, -0.2, 0.123456789, 1, 2, -3}
	RotationZ(0.77).TransformBuffer(buf, buf)
	if buf[2] != 0.123456789 || buf[5] != -3 {
		t.Errorf("z components changed: %v", buf)
	}
}

func TestTranslate(t *testing.T) {
	p := r3.Vec{X: 3, Y: -1, Z: 2}
	m := Translation(p)
	if got := m.Transform(r3.Vec{X: 1, Y: 1}); !equalWithin(got, r3.Vec{X: 4, Y: 0, Z: 2}, tol) {
		t.Errorf("got %v. want (4,0,2)", got)
	}
	if m.Position() != p {
		t.Errorf("position got %v. want %v", m.Position(), p)
	}
	m = m.Translate(r3.Vec{Z: -2})
	if m.Position() != (r3.Vec{X: 3, Y: -1}) {
		t.Errorf("translated position got %v", m.Position())
	}
	buf := []float32{1, 1, 0, 0, 0, 0}
	m.TransformBuffer(buf, buf)
	want32 := []float32{4, 0, 0, 3, -1, 0}
	for i := range buf {
		if math.Abs(float64(buf[i]-want32[i])) > 1e-6 {
			t.Fatalf("buffer transform got %v. want %v", buf, want32)
		}
	}
}

func TestLookAt(t *testing.T) {
	eye := r3.Vec{Z: 3}
	view := LookAt(eye, r3.Vec{}, r3.Vec{Y: 1})
	if got := view.Transform(eye); !equalWithin(got, r3.Vec{}, tol) {
		t.Errorf("eye should map to origin, got %v", got)
	}
	if got := view.Transform(r3.Vec{}); !equalWithin(got, r3.Vec{Z: -3}, tol) {
		t.Errorf("target should lie on -Z, got %v", got)
	}
	if got := view.Transform(r3.Vec{X: 1}); !equalWithin(got, r3.Vec{X: 1, Z: -3}, tol) {
		t.Errorf("+X should stay to the right, got %v", got)
	}
	if got := LookAt(eye, eye, r3.Vec{Y: 1}); got != (Transform{}) {
		t.Errorf("degenerate view should be identity")
	}
	if got := LookAt(eye, r3.Vec{}, r3.Vec{Z: 1}); got != (Transform{}) {
		t.Errorf("up parallel to view should be identity")
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 100.
	proj := Perspective(math.Pi/4, 1, near, far)
	if got := proj.Transform(r3.Vec{Z: -near}); math.Abs(got.Z+1) > 1e-9 {
		t.Errorf("near plane maps to depth %g. want -1", got.Z)
	}
	if got := proj.Transform(r3.Vec{Z: -far}); math.Abs(got.Z-1) > 1e-9 {
		t.Errorf("far plane maps to depth %g. want 1", got.Z)
	}
	// Top of the frustum at unit distance for a 45° field of view.
	top := proj.Transform(r3.Vec{Y: math.Tan(math.Pi / 8), Z: -1})
	if math.Abs(top.Y-1) > 1e-9 {
		t.Errorf("frustum top maps to %g. want 1", top.Y)
	}
}

func TestColumnMajor32(t *testing.T) {
	cm := Translation(r3.Vec{X: 1, Y: 2, Z: 3}).ColumnMajor32()
	want := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1}
	if cm != want {
		t.Errorf("got %v. want %v", cm, want)
	}
}

func TestSetBuffer(t *testing.T) {
	buf := []float32{1, 2, 3, -4, 5, -6}
	s := SetFromBuffer(buf)
	if len(s) != 2 || s.Min() != (r3.Vec{X: -4, Y: 2, Z: -6}) || s.Max() != (r3.Vec{X: 1, Y: 5, Z: 3}) {
		t.Errorf("got set %v", s)
	}
	if got := SetFromBuffer(buf[:5]); len(got) != 1 {
		t.Errorf("partial vector should be ignored, got %v", got)
	}
}

func TestBoundingBox(t *testing.T) {
	s := SetFromBuffer([]float32{1, -2, 0, -1, 3, 0.5, 0, 0, -4})
	box := BoundingBox(s)
	if box.Min != (r3.Vec{X: -1, Y: -2, Z: -4}) || box.Max != (r3.Vec{X: 1, Y: 3, Z: 0.5}) {
		t.Fatalf("got %+v", box)
	}
	if box.Size() != (r3.Vec{X: 2, Y: 5, Z: 4.5}) {
		t.Errorf("got size %v", box.Size())
	}
	if !equalWithin(box.Center(), r3.Vec{Y: 0.5, Z: -1.75}, 1e-12) {
		t.Errorf("got center %v", box.Center())
	}
}

func equalWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
