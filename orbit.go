package glmesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// OrbitPath samples a circle of the given radius centered at the origin in
// the XY plane, starting at (radius, 0, 0) and advancing counter-clockwise by
// angularStep radians. Samples cover the requested number of full turns,
// ceil(turns*2π/angularStep) points in total.
func OrbitPath(radius, angularStep, turns float64) ([]r3.Vec, error) {
	switch {
	case !isFinite(radius) || radius <= 0:
		return nil, invalidParam("OrbitPath", "radius must be positive and finite, got %g", radius)
	case !isFinite(angularStep) || angularStep <= 0:
		return nil, invalidParam("OrbitPath", "angular step must be positive and finite, got %g", angularStep)
	case !isFinite(turns) || turns <= 0:
		return nil, invalidParam("OrbitPath", "turns must be positive and finite, got %g", turns)
	}
	n := math.Ceil(turns*tau/angularStep - 1e-9)
	if n < 1 {
		return nil, invalidParam("OrbitPath", "orbit of %g turns at step %g has no samples", turns, angularStep)
	}
	if n > 1<<24 {
		return nil, invalidParam("OrbitPath", "orbit of %g turns at step %g has too many samples", turns, angularStep)
	}
	path := make([]r3.Vec, int(n))
	for i := range path {
		s, c := math.Sincos(float64(i) * angularStep)
		path[i] = r3.Vec{X: radius * c, Y: radius * s}
	}
	return path, nil
}

// OrbitCursor walks an orbit table a fixed number of entries per tick,
// wrapping around the end of the table.
type OrbitCursor struct {
	path   []r3.Vec
	pos    int
	stride int
}

// NewOrbitCursor returns a cursor at the start of path advancing stride
// entries per tick. A stride that is not shorter than the table would
// skip whole revolutions per tick and is rejected with ErrDomain.
func NewOrbitCursor(path []r3.Vec, stride int) (*OrbitCursor, error) {
	if stride <= 0 {
		return nil, invalidParam("NewOrbitCursor", "stride must be positive, got %d", stride)
	}
	if len(path) == 0 {
		return nil, domainErr("NewOrbitCursor", "empty orbit table")
	}
	if stride >= len(path) {
		return nil, domainErr("NewOrbitCursor", "stride %d not shorter than orbit table of length %d", stride, len(path))
	}
	return &OrbitCursor{path: path, stride: stride}, nil
}

// Pos returns the current index into the orbit table.
func (c *OrbitCursor) Pos() int { return c.pos }

// Len returns the length of the orbit table.
func (c *OrbitCursor) Len() int { return len(c.path) }

// Center returns the orbit table entry under the cursor.
func (c *OrbitCursor) Center() r3.Vec { return c.path[c.pos] }

// At returns the i'th entry of the orbit table.
func (c *OrbitCursor) At(i int) (r3.Vec, error) {
	if i < 0 || i >= len(c.path) {
		return r3.Vec{}, domainErr("OrbitCursor.At", "orbit cursor %d exceeds table length %d", i, len(c.path))
	}
	return c.path[i], nil
}

// Advance moves the cursor one stride forward and returns the new center.
// Positions past the end of the table continue from its start, keeping the
// overshoot, so a table covering whole turns is walked at constant speed.
func (c *OrbitCursor) Advance() r3.Vec {
	c.pos = (c.pos + c.stride) % len(c.path)
	return c.path[c.pos]
}

// Reset moves the cursor back to the start of the table.
func (c *OrbitCursor) Reset() { c.pos = 0 }
