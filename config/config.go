// Package config loads scene and window settings from TOML files.
//
// A file only needs the settings it changes, the rest keep their defaults:
//
//	scene = "solar-system"
//
//	[orbit]
//	radius = 2.0
//	resample = true
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/glmesh/scene"
)

// Config holds every setting of the commands.
type Config struct {
	Scene     string    `toml:"scene"`
	Window    Window    `toml:"window"`
	Mobius    Mobius    `toml:"mobius"`
	Sphere    Sphere    `toml:"sphere"`
	Orbit     Orbit     `toml:"orbit"`
	Animation Animation `toml:"animation"`
	Skybox    Skybox    `toml:"skybox"`
	// Textures maps texture names used by scene objects to image files.
	Textures map[string]string `toml:"textures"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Mobius struct {
	Step float64 `toml:"step"`
}

// Sphere configures the planet.
type Sphere struct {
	Stacks int     `toml:"stacks"`
	Slices int     `toml:"slices"`
	Radius float64 `toml:"radius"`
}

// Orbit configures the sun and its path around the planet.
type Orbit struct {
	SunRadius float64 `toml:"sun_radius"`
	Radius    float64 `toml:"radius"`
	Step      float64 `toml:"step"`
	Turns     float64 `toml:"turns"`
	Stride    int     `toml:"stride"`
	Resample  bool    `toml:"resample"`
}

type Animation struct {
	FramesPerTick int     `toml:"frames_per_tick"`
	SpinAngle     float64 `toml:"spin_angle"`
	ColorShift    int     `toml:"color_shift"`
}

// Skybox configures the cubemap. Face images are read from Dir as
// <face><Ext> for each of glmesh.SkyboxFaces.
type Skybox struct {
	Size float64 `toml:"size"`
	Dir  string  `toml:"dir"`
	Ext  string  `toml:"ext"`
}

// Default returns the settings of the tutorial programs.
func Default() Config {
	p := scene.DefaultParams()
	return Config{
		Scene: scene.NameMobius,
		Window: Window{
			Title:  "glmesh",
			Width:  600,
			Height: 600,
		},
		Mobius: Mobius{Step: p.MobiusStep},
		Sphere: Sphere{Stacks: p.Stacks, Slices: p.Slices, Radius: p.PlanetRadius},
		Orbit: Orbit{
			SunRadius: p.SunRadius,
			Radius:    p.OrbitRadius,
			Step:      p.OrbitStep,
			Turns:     p.OrbitTurns,
			Stride:    p.OrbitStride,
			Resample:  p.ResampleOrbit,
		},
		Animation: Animation{
			FramesPerTick: p.FramesPerTick,
			SpinAngle:     p.SpinAngle,
			ColorShift:    p.ColorShift,
		},
		Skybox: Skybox{Size: p.SkyboxSize, Dir: "skybox", Ext: ".jpg"},
		Textures: map[string]string{
			"earth": "earth.jpg",
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	fp, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	defer fp.Close()
	err = cfg.Decode(fp)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the settings in cfg and validates the
// result. Unknown keys are an error.
func (cfg *Config) Decode(r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Errorf("line %d column %d: %w", row, col, err)
	} else if err != nil {
		return err
	}
	return cfg.Validate()
}

// Encode writes cfg to w as TOML.
func (cfg Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks settings that the scene builders do not.
func (cfg Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	for _, name := range scene.Names() {
		if name == cfg.Scene {
			return nil
		}
	}
	return fmt.Errorf("unknown scene %q, want one of %v", cfg.Scene, scene.Names())
}

// Params returns the scene parameters in cfg.
func (cfg Config) Params() scene.Params {
	return scene.Params{
		MobiusStep:    cfg.Mobius.Step,
		Stacks:        cfg.Sphere.Stacks,
		Slices:        cfg.Sphere.Slices,
		PlanetRadius:  cfg.Sphere.Radius,
		SunRadius:     cfg.Orbit.SunRadius,
		OrbitRadius:   cfg.Orbit.Radius,
		OrbitStep:     cfg.Orbit.Step,
		OrbitTurns:    cfg.Orbit.Turns,
		OrbitStride:   cfg.Orbit.Stride,
		ResampleOrbit: cfg.Orbit.Resample,
		FramesPerTick: cfg.Animation.FramesPerTick,
		SpinAngle:     cfg.Animation.SpinAngle,
		ColorShift:    cfg.Animation.ColorShift,
		SkyboxSize:    cfg.Skybox.Size,
	}
}
