package scene

import (
	"math"

	"github.com/soypat/glmesh"
	"github.com/soypat/glmesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 4x4 homogeneous transform. The zero value is the identity.
type Transform = d3.Transform

// Direction is a camera movement direction relative to where it looks.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Default camera values of the tutorial programs.
const (
	DefaultFOV         = 45.0 // degrees
	DefaultNear        = 0.1
	DefaultFar         = 100.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	maxPitch           = 89.0
)

// CameraState is a fly camera with Y up. Yaw and Pitch are in degrees,
// a yaw of -90 looks down the -Z axis.
type CameraState struct {
	Position r3.Vec
	Yaw      float64
	Pitch    float64
	// Speed is in world units per second.
	Speed float64
	// Sensitivity converts cursor offsets to degrees.
	Sensitivity float64
	FOV         float64
	Near, Far   float64
}

// NewCamera returns a camera at (0,0,3) looking at the origin.
func NewCamera() *CameraState {
	return &CameraState{
		Position:    r3.Vec{Z: 3},
		Yaw:         -90,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		FOV:         DefaultFOV,
		Near:        DefaultNear,
		Far:         DefaultFar,
	}
}

var worldUp = r3.Vec{Y: 1}

// Front returns the unit view direction.
func (c *CameraState) Front() r3.Vec {
	sy, cy := math.Sincos(glmesh.DtoR(c.Yaw))
	sp, cp := math.Sincos(glmesh.DtoR(c.Pitch))
	return r3.Unit(r3.Vec{X: cy * cp, Y: sp, Z: sy * cp})
}

// right returns the unit vector to the right of the view direction.
func (c *CameraState) right() r3.Vec {
	return r3.Unit(r3.Cross(c.Front(), worldUp))
}

// Move translates the camera in direction dir for dt seconds.
func (c *CameraState) Move(dir Direction, dt float64) {
	v := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = r3.Add(c.Position, r3.Scale(v, c.Front()))
	case Backward:
		c.Position = r3.Sub(c.Position, r3.Scale(v, c.Front()))
	case Right:
		c.Position = r3.Add(c.Position, r3.Scale(v, c.right()))
	case Left:
		c.Position = r3.Sub(c.Position, r3.Scale(v, c.right()))
	case Up:
		c.Position = r3.Add(c.Position, r3.Scale(v, worldUp))
	case Down:
		c.Position = r3.Sub(c.Position, r3.Scale(v, worldUp))
	}
}

// Look turns the camera by a cursor offset. Pitch is clamped short of the
// poles so the view never flips.
func (c *CameraState) Look(dx, dy float64) {
	c.Yaw = math.Mod(c.Yaw+dx*c.Sensitivity, 360)
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dy*c.Sensitivity))
}

// Zoom narrows or widens the field of view, kept within [1, 45] degrees.
func (c *CameraState) Zoom(dy float64) {
	c.FOV = math.Max(1, math.Min(DefaultFOV, c.FOV-dy))
}

// View returns the world to camera transform.
func (c *CameraState) View() Transform {
	return d3.LookAt(c.Position, r3.Add(c.Position, c.Front()), worldUp)
}

// Projection returns the camera to clip space transform for a viewport
// with the given width over height ratio. Non positive ratios are taken as 1.
func (c *CameraState) Projection(aspect float64) Transform {
	if !(aspect > 0) {
		aspect = 1
	}
	return d3.Perspective(glmesh.DtoR(c.FOV), aspect, c.Near, c.Far)
}
