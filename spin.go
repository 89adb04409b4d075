package glmesh

import (
	"github.com/soypat/glmesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// RotateInPlane rotates every vertex by angle radians about the vertical Z
// axis and returns the rotated copy. Z components are copied unchanged.
// Applying it once per tick accumulates rounding drift, which is fine for
// a visual spin. It returns nil if angle is not finite.
func RotateInPlane(vertices []r3.Vec, angle float64) []r3.Vec {
	if !isFinite(angle) {
		return nil
	}
	rot := d3.RotationZ(angle)
	rotated := make([]r3.Vec, len(vertices))
	for i, v := range vertices {
		rotated[i] = rot.Transform(v)
	}
	return rotated
}

// RotateBufferInPlane is the flat buffer form of RotateInPlane. It rotates
// the xyz triples of buf in place.
func RotateBufferInPlane(buf []float32, angle float64) error {
	if len(buf)%3 != 0 {
		return invalidParam("RotateBufferInPlane", "vertex buffer length %d not a multiple of 3", len(buf))
	}
	if !isFinite(angle) {
		return invalidParam("RotateBufferInPlane", "angle must be finite, got %g", angle)
	}
	d3.RotationZ(angle).TransformBuffer(buf, buf)
	return nil
}
