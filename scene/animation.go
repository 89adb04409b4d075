package scene

import (
	"fmt"

	"github.com/soypat/glmesh"
)

// AnimationState holds the counters advanced by the frame loop. Animation
// runs in ticks: one tick fires every FramesPerTick frames.
type AnimationState struct {
	FramesPerTick int
	// SpinAngle is the planet rotation per tick in radians.
	SpinAngle float64
	// ColorShift is the number of colors rotated to the back per tick.
	ColorShift int
	Orbit      *glmesh.OrbitCursor
	Colors     *glmesh.ColorRing

	frame int
	ticks int
}

// NewAnimation builds the orbit table, its cursor and the color ring
// described by p.
func NewAnimation(p Params) (*AnimationState, error) {
	if p.FramesPerTick <= 0 {
		return nil, fmt.Errorf("frames per tick must be positive, got %d: %w", p.FramesPerTick, glmesh.ErrInvalidParameter)
	}
	path, err := glmesh.OrbitPath(p.OrbitRadius, p.OrbitStep, p.OrbitTurns)
	if err != nil {
		return nil, err
	}
	cursor, err := glmesh.NewOrbitCursor(path, p.OrbitStride)
	if err != nil {
		return nil, err
	}
	ring, err := glmesh.NewColorRing(glmesh.DefaultMobiusColors)
	if err != nil {
		return nil, err
	}
	return &AnimationState{
		FramesPerTick: p.FramesPerTick,
		SpinAngle:     p.SpinAngle,
		ColorShift:    p.ColorShift,
		Orbit:         cursor,
		Colors:        ring,
	}, nil
}

// Step advances one frame and reports whether a tick fired. On a tick the
// orbit cursor and color ring are advanced.
func (a *AnimationState) Step() bool {
	a.frame++
	if a.FramesPerTick > 1 && a.frame%a.FramesPerTick != 0 {
		return false
	}
	a.ticks++
	if a.Orbit != nil {
		a.Orbit.Advance()
	}
	if a.Colors != nil {
		a.Colors.Rotate(a.ColorShift)
	}
	return true
}

// Frame returns the number of frames stepped.
func (a *AnimationState) Frame() int { return a.frame }

// Ticks returns the number of ticks fired.
func (a *AnimationState) Ticks() int { return a.ticks }
