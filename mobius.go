package glmesh

import "math"

// DefaultMobiusStep is the angular step of the tutorial band. It yields 32
// samples, 64 vertices and 192 indices.
const DefaultMobiusStep = 0.2

// Half width of the band measured from its center circle.
const mobiusHalfWidth = 0.5

// MobiusSamples returns the number of angular samples taken over [0, 2π) for
// the requested step. The step is snapped down so the samples divide the full
// turn evenly and the band closes exactly at its seam.
func MobiusSamples(step float64) (int, error) {
	if !isFinite(step) || step <= 0 {
		return 0, invalidParam("MobiusSamples", "step must be positive and finite, got %g", step)
	}
	n := math.Ceil(tau/step - 1e-9)
	if n < 2 {
		return 0, invalidParam("MobiusSamples", "step %g too large for a closed band", step)
	}
	if n > math.MaxInt32/3 {
		return 0, invalidParam("MobiusSamples", "step %g too small", step)
	}
	return int(n), nil
}

// MobiusVertices samples a Möbius band around the Z axis. Each sample emits
// two vertices, one on each edge of the band, so vertex 2k lies on the inner
// rail and vertex 2k+1 on the outer rail at angle 2πk/N. The returned buffer
// holds 6 floats per sample.
func MobiusVertices(step float64) ([]float32, error) {
	n, err := MobiusSamples(step)
	if err != nil {
		return nil, withOp("MobiusVertices", err)
	}
	da := tau / float64(n)
	vertices := make([]float32, 0, 6*n)
	for k := 0; k < n; k++ {
		a := float64(k) * da
		sa, ca := math.Sincos(a)
		sh, ch := math.Sincos(a / 2)
		inner := 1 - mobiusHalfWidth*ch
		outer := 1 + mobiusHalfWidth*ch
		vertices = append(vertices,
			float32(ca*inner), float32(sa*inner), float32(-mobiusHalfWidth*sh),
			float32(ca*outer), float32(sa*outer), float32(mobiusHalfWidth*sh),
		)
	}
	return vertices, nil
}

// MobiusIndices returns the triangle list for the band sampled by
// MobiusVertices with the same step. Triangles alternate between rails along
// the band. After a full turn the half twist swaps the rails, so the strip is
// closed with the outer then inner vertex of the first sample. The list
// holds 6N indices for N samples.
func MobiusIndices(step float64) ([]uint32, error) {
	n, err := MobiusSamples(step)
	if err != nil {
		return nil, withOp("MobiusIndices", err)
	}
	nv := 2 * n
	strip := make([]uint32, nv+2)
	for i := 0; i < nv; i++ {
		strip[i] = uint32(i)
	}
	strip[nv] = 1
	strip[nv+1] = 0
	tris := StripToTriangles(strip)
	if err := FixWinding(tris); err != nil {
		return nil, withOp("MobiusIndices", err)
	}
	return tris, nil
}

// NewMobius returns the band sampled at step with the default color table
// applied to its vertices.
func NewMobius(step float64) (*Mesh, error) {
	pos, err := MobiusVertices(step)
	if err != nil {
		return nil, withOp("NewMobius", err)
	}
	idx, err := MobiusIndices(step)
	if err != nil {
		return nil, withOp("NewMobius", err)
	}
	ring, err := NewColorRing(DefaultMobiusColors)
	if err != nil {
		return nil, withOp("NewMobius", err)
	}
	m := &Mesh{
		Positions: pos,
		Indices:   idx,
		Colors:    make([]float32, 4*(len(pos)/3)),
	}
	ring.Fill(m.Colors)
	return m, nil
}
