// Package scene assembles the tutorial scenes out of glmesh geometry and
// animates them frame by frame. Camera and animation state live in explicit
// structs owned by the caller's frame loop.
package scene

import (
	"fmt"

	"github.com/soypat/glmesh"
	"github.com/soypat/glmesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Params configures scene geometry and animation.
type Params struct {
	MobiusStep float64
	// Planet sphere resolution and size.
	Stacks, Slices int
	PlanetRadius   float64
	// Sun sphere size and orbit around the planet.
	SunRadius   float64
	OrbitRadius float64
	OrbitStep   float64
	OrbitTurns  float64
	OrbitStride int
	// ResampleOrbit re-samples the sun sphere at every orbit position
	// instead of moving it with its instance transform.
	ResampleOrbit bool
	FramesPerTick int
	SpinAngle     float64
	ColorShift    int
	SkyboxSize    float64
}

// DefaultParams returns the values used by the tutorial programs.
func DefaultParams() Params {
	return Params{
		MobiusStep:    glmesh.DefaultMobiusStep,
		Stacks:        8,
		Slices:        16,
		PlanetRadius:  0.5,
		SunRadius:     0.1,
		OrbitRadius:   1.5,
		OrbitStep:     0.01,
		OrbitTurns:    3,
		OrbitStride:   1,
		FramesPerTick: 5,
		SpinAngle:     0.01,
		ColorShift:    3,
		SkyboxSize:    50,
	}
}

// Object is a mesh placed in the world by Transform.
type Object struct {
	Name      string
	Mesh      *glmesh.Mesh
	Transform Transform
	// Texture names the image sampled by the object, empty for none.
	Texture string
	// Color is used for objects without per vertex colors.
	Color glmesh.Color
	// Dynamic objects have buffers rewritten on animation ticks.
	Dynamic bool
	// Emissive objects are drawn unlit. The light source is emissive.
	Emissive bool
	// Background objects surround the camera and are left out of WorldMesh.
	Background bool
}

// Scene is a named list of objects and the roles they play in animation.
type Scene struct {
	Name    string
	Objects []*Object

	params  Params
	colored *Object
	spinner *Object
	orbiter *Object
}

// Object returns the object with the given name or nil if not found.
func (s *Scene) Object(name string) *Object {
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

func (s *Scene) add(obj *Object) *Object {
	s.Objects = append(s.Objects, obj)
	return obj
}

// OrbitTransform returns the instance transform that moves a sphere sampled
// at the origin to center.
func OrbitTransform(center r3.Vec) Transform {
	return d3.Translation(center)
}

// Step advances a by one frame. If a tick fires the dynamic objects of s
// are updated and Step returns true.
func (s *Scene) Step(a *AnimationState) (bool, error) {
	if !a.Step() {
		return false, nil
	}
	return true, s.Apply(a)
}

// Apply writes the current animation state into the dynamic objects of s.
// The planet spin is incremental so each call turns it further.
func (s *Scene) Apply(a *AnimationState) error {
	if s.colored != nil && a.Colors != nil {
		a.Colors.Fill(s.colored.Mesh.Colors)
	}
	if s.spinner != nil && a.SpinAngle != 0 {
		m := s.spinner.Mesh
		if err := glmesh.RotateBufferInPlane(m.Positions, a.SpinAngle); err != nil {
			return err
		}
		if m.Normals != nil {
			if err := glmesh.RotateBufferInPlane(m.Normals, a.SpinAngle); err != nil {
				return err
			}
		}
	}
	if s.orbiter != nil && a.Orbit != nil {
		center := a.Orbit.Center()
		if s.params.ResampleOrbit {
			return glmesh.ResampleSphereInto(s.orbiter.Mesh.Positions, s.params.Stacks, s.params.Slices, s.params.SunRadius, center)
		}
		s.orbiter.Transform = OrbitTransform(center)
	}
	return nil
}

// WorldMesh merges the foreground objects of s into one mesh with object
// transforms applied to positions. Colors are taken per vertex or from the
// object color. Normals are kept only if every object has them and are
// copied as is since scene transforms are translations.
func (s *Scene) WorldMesh() (*glmesh.Mesh, error) {
	world := &glmesh.Mesh{}
	keepNormals := true
	for _, obj := range s.Objects {
		if !obj.Background && obj.Mesh.Normals == nil {
			keepNormals = false
		}
	}
	for _, obj := range s.Objects {
		if obj.Background {
			continue
		}
		m := obj.Mesh
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("object %q: %w", obj.Name, err)
		}
		base := uint32(world.VertexCount())
		n := len(world.Positions)
		world.Positions = append(world.Positions, m.Positions...)
		obj.Transform.TransformBuffer(world.Positions[n:], m.Positions)
		if keepNormals {
			world.Normals = append(world.Normals, m.Normals...)
		}
		if m.Colors != nil {
			world.Colors = append(world.Colors, m.Colors...)
		} else {
			for i := 0; i < m.VertexCount(); i++ {
				world.Colors = append(world.Colors, obj.Color[:]...)
			}
		}
		for _, idx := range m.Indices {
			world.Indices = append(world.Indices, base+idx)
		}
	}
	return world, nil
}
