package scene

import (
	"fmt"
	"sort"

	"github.com/soypat/glmesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Scene names accepted by Build, one per tutorial revision.
const (
	NameMobius         = "mobius"
	NameAnimatedMobius = "animated-mobius"
	NameEarth          = "earth"
	NameSolarSystem    = "solar-system"
	NameSkybox         = "skybox"
)

var builders = map[string]func(Params) (*Scene, error){
	NameMobius:         Mobius,
	NameAnimatedMobius: AnimatedMobius,
	NameEarth:          Earth,
	NameSolarSystem:    SolarSystem,
	NameSkybox:         Skybox,
}

// Names returns the sorted scene names accepted by Build.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the scene registered under name.
func Build(name string, p Params) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, want one of %v: %w", name, Names(), glmesh.ErrInvalidParameter)
	}
	return build(p)
}

// Mobius is the static band with per vertex colors.
func Mobius(p Params) (*Scene, error) {
	band, err := glmesh.NewMobius(p.MobiusStep)
	if err != nil {
		return nil, err
	}
	s := &Scene{Name: NameMobius, params: p}
	s.add(&Object{Name: "mobius", Mesh: band})
	return s, nil
}

// AnimatedMobius is the band with its colors cycled every tick.
func AnimatedMobius(p Params) (*Scene, error) {
	s, err := Mobius(p)
	if err != nil {
		return nil, err
	}
	s.Name = NameAnimatedMobius
	s.colored = s.Object("mobius")
	s.colored.Dynamic = true
	return s, nil
}

// Earth is a textured planet spinning about its polar axis.
func Earth(p Params) (*Scene, error) {
	planet, err := glmesh.NewSphere(p.Stacks, p.Slices, p.PlanetRadius, r3.Vec{})
	if err != nil {
		return nil, err
	}
	s := &Scene{Name: NameEarth, params: p}
	s.spinner = s.add(&Object{
		Name:    "earth",
		Mesh:    planet,
		Texture: "earth",
		Color:   glmesh.Color{0.2, 0.4, 0.8, 1},
		Dynamic: true,
	})
	return s, nil
}

// SolarSystem adds a sun sphere orbiting the planet. The sun doubles as the
// light position of the lit planet shader and is itself drawn unlit.
func SolarSystem(p Params) (*Scene, error) {
	s, err := Earth(p)
	if err != nil {
		return nil, err
	}
	s.Name = NameSolarSystem
	start := r3.Vec{X: p.OrbitRadius}
	sun := &Object{
		Name:     "sun",
		Texture:  "sun",
		Color:    glmesh.Color{1, 0.85, 0.3, 1},
		Dynamic:  true,
		Emissive: true,
	}
	if p.ResampleOrbit {
		sun.Mesh, err = glmesh.NewSphere(p.Stacks, p.Slices, p.SunRadius, start)
	} else {
		sun.Mesh, err = glmesh.NewSphere(p.Stacks, p.Slices, p.SunRadius, r3.Vec{})
		sun.Transform = OrbitTransform(start)
	}
	if err != nil {
		return nil, err
	}
	s.orbiter = s.add(sun)
	return s, nil
}

// Skybox surrounds the solar system with a cubemapped cube.
func Skybox(p Params) (*Scene, error) {
	s, err := SolarSystem(p)
	if err != nil {
		return nil, err
	}
	s.Name = NameSkybox
	box, err := glmesh.NewSkybox(p.SkyboxSize)
	if err != nil {
		return nil, err
	}
	s.add(&Object{Name: "skybox", Mesh: box, Texture: "skybox", Background: true})
	return s, nil
}

// LightPosition returns the world position of the sun, or the origin when
// the scene has none.
func (s *Scene) LightPosition() r3.Vec {
	if s.orbiter == nil {
		return r3.Vec{}
	}
	if s.params.ResampleOrbit {
		bb := s.orbiter.Mesh.Bounds()
		c := bb.Center()
		return r3.Vec{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
	}
	return s.orbiter.Transform.Position()
}
