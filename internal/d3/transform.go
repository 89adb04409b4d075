package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a 3D spatial transformation.
// The zero value of Transform is the identity transform.
type Transform struct {
	// in order to make the zero value of Transform represent the identity
	// transform we store it with the identity matrix subtracted.
	// These diagonal elements are subtracted such that
	//
	//	d00 = x00-1, d11 = x11-1, d22 = x22-1, d33 = x33-1
	//
	// where x00, x11, x22, x33 are the matrix diagonal elements.
	// We can then check for identity in if blocks like so:
	//
	//	if T == (Transform{})
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
	x30, x31, x32, d33 float64
}

// Transform applies the Transform to the argument vector
// and returns the result.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	// https://github.com/mrdoob/three.js/blob/dev/src/math/Vector3.js#L262
	w := 1 / (t.x30*v.X + t.x31*v.Y + t.x32*v.Z + t.d33 + 1)
	return r3.Vec{
		X: ((t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z + t.x03) * w,
		Y: (t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z + t.x13) * w,
		Z: (t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z + t.x23) * w,
	}
}

// TransformBuffer applies the Transform to every xyz triple of a flat vertex
// buffer, writing the result to dst. dst and src may be the same slice.
func (t Transform) TransformBuffer(dst, src []float32) {
	if len(dst) < len(src) {
		panic("dst shorter than src")
	}
	for i := 0; i+2 < len(src); i += 3 {
		v := t.Transform(r3.Vec{X: float64(src[i]), Y: float64(src[i+1]), Z: float64(src[i+2])})
		dst[i], dst[i+1], dst[i+2] = float32(v.X), float32(v.Y), float32(v.Z)
	}
}

// zeroTransform is the Transform that returns zeroTransform when multiplied by any Transform.
var zeroTransform = Transform{d00: -1, d11: -1, d22: -1, d33: -1}

// NewTransform returns a new Transform type and populates its elements
// with values passed in row-major form. If val is nil then NewTransform
// returns a Transform filled with zeros.
func NewTransform(a []float64) Transform {
	if a == nil {
		return zeroTransform
	}
	if len(a) != 16 {
		panic("Transform is initialized with 16 values")
	}
	return Transform{
		d00: a[0] - 1, x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], d11: a[5] - 1, x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], d22: a[10] - 1, x23: a[11],
		x30: a[12], x31: a[13], x32: a[14], d33: a[15] - 1,
	}
}

// Translation returns the pure translation Transform.
func Translation(v r3.Vec) Transform {
	return Transform{}.Translate(v)
}

// RotationZ returns the Transform rotating by angle radians about the Z axis,
// counter-clockwise when looking down from +Z.
func RotationZ(angle float64) Transform {
	s, c := math.Sincos(angle)
	return Transform{
		d00: c - 1, x01: -s,
		x10: s, d11: c - 1,
	}
}

// Translate adds Vec to the positional Transform.
func (t Transform) Translate(v r3.Vec) Transform {
	t.x03 += v.X
	t.x13 += v.Y
	t.x23 += v.Z
	return t
}

// Position returns the translation component of the Transform.
func (t Transform) Position() r3.Vec {
	return r3.Vec{X: t.x03, Y: t.x13, Z: t.x23}
}

// LookAt returns a right-handed view Transform for a camera at eye looking
// at center with the given up direction. It returns the identity when eye
// and center coincide or up is parallel to the view direction.
func LookAt(eye, center, up r3.Vec) Transform {
	fwd := r3.Sub(center, eye)
	if r3.Norm(fwd) == 0 {
		return Transform{}
	}
	f := r3.Unit(fwd)
	side := r3.Cross(f, up)
	if r3.Norm(side) == 0 {
		return Transform{}
	}
	s := r3.Unit(side)
	u := r3.Cross(s, f)
	return NewTransform([]float64{
		s.X, s.Y, s.Z, -r3.Dot(s, eye),
		u.X, u.Y, u.Z, -r3.Dot(u, eye),
		-f.X, -f.Y, -f.Z, r3.Dot(f, eye),
		0, 0, 0, 1,
	})
}

// Perspective returns an OpenGL style projection Transform mapping the view
// frustum to clip space with depth in [-1, 1]. fovy is in radians.
func Perspective(fovy, aspect, near, far float64) Transform {
	f := 1 / math.Tan(fovy/2)
	return NewTransform([]float64{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	})
}

// equals tests the equality of the Transforms to within a tolerance.
func (t Transform) equals(b Transform, tolerance float64) bool {
	return math.Abs(t.d00-b.d00) < tolerance &&
		math.Abs(t.x01-b.x01) < tolerance &&
		math.Abs(t.x02-b.x02) < tolerance &&
		math.Abs(t.x03-b.x03) < tolerance &&
		math.Abs(t.x10-b.x10) < tolerance &&
		math.Abs(t.d11-b.d11) < tolerance &&
		math.Abs(t.x12-b.x12) < tolerance &&
		math.Abs(t.x13-b.x13) < tolerance &&
		math.Abs(t.x20-b.x20) < tolerance &&
		math.Abs(t.x21-b.x21) < tolerance &&
		math.Abs(t.d22-b.d22) < tolerance &&
		math.Abs(t.x23-b.x23) < tolerance &&
		math.Abs(t.x30-b.x30) < tolerance &&
		math.Abs(t.x31-b.x31) < tolerance &&
		math.Abs(t.x32-b.x32) < tolerance &&
		math.Abs(t.d33-b.d33) < tolerance
}

// SliceCopy returns a copy of the Transform's data
// in row major storage format. It returns 16 elements.
func (t Transform) SliceCopy() []float64 {
	return []float64{
		t.d00 + 1, t.x01, t.x02, t.x03,
		t.x10, t.d11 + 1, t.x12, t.x13,
		t.x20, t.x21, t.d22 + 1, t.x23,
		t.x30, t.x31, t.x32, t.d33 + 1,
	}
}

// ColumnMajor32 returns the Transform as 16 float32 in column major order,
// the layout glUniformMatrix4fv expects with transpose set to false.
func (t Transform) ColumnMajor32() [16]float32 {
	rm := t.SliceCopy()
	var cm [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			cm[c*4+r] = float32(rm[r*4+c])
		}
	}
	return cm
}
