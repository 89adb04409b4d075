// Command glmesh exports the tutorial scenes as STL meshes and PNG previews.
//
// Usage:
//
//	glmesh -scene solar-system -frames 120 -stl solar.stl -png solar.png
//	glmesh -scene animated-mobius -frames 300 -seq frames/
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/soypat/glmesh"
	"github.com/soypat/glmesh/config"
	"github.com/soypat/glmesh/preview"
	"github.com/soypat/glmesh/render"
	"github.com/soypat/glmesh/scene"
)

func main() {
	var (
		cfgPath    = flag.String("config", "glmesh.toml", "TOML configuration file. Defaults are used if not found.")
		sceneName  = flag.String("scene", "", fmt.Sprintf("scene to export, one of %v. Overrides configuration.", scene.Names()))
		frames     = flag.Int("frames", 0, "number of animation frames to step before exporting.")
		stlPath    = flag.String("stl", "", "write the scene mesh to this STL file.")
		pngPath    = flag.String("png", "", "write a preview of the scene to this PNG file.")
		seqDir     = flag.String("seq", "", "write a PNG preview of every animation tick to this directory.")
		fit        = flag.Bool("fit", false, "frame the preview camera around the scene instead of using the tutorial view.")
		step       = flag.Float64("step", 0, fmt.Sprintf("Möbius band angular step in radians, the tutorial uses %g. Overrides configuration.", glmesh.DefaultMobiusStep))
		dumpConfig = flag.Bool("dump-config", false, "print the effective configuration and exit.")
	)
	flag.Parse()
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *sceneName != "" {
		cfg.Scene = *sceneName
		if err = cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}
	if *step > 0 {
		cfg.Mobius.Step = *step
	}
	if *dumpConfig {
		if err = cfg.Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *stlPath == "" && *pngPath == "" && *seqDir == "" {
		log.Fatal("nothing to do: set at least one of -stl, -png or -seq")
	}

	params := cfg.Params()
	s, err := scene.Build(cfg.Scene, params)
	if err != nil {
		log.Fatal(err)
	}
	anim, err := scene.NewAnimation(params)
	if err != nil {
		log.Fatal(err)
	}
	opt := preview.DefaultOptions()
	opt.Width, opt.Height = cfg.Window.Width, cfg.Window.Height
	opt.FromCamera(scene.NewCamera())
	opt.Textures = loadTextures(cfg.Textures)
	if *fit {
		world, err := s.WorldMesh()
		if err != nil {
			log.Fatal(err)
		}
		if err = opt.Fit(world); err != nil {
			log.Fatal(err)
		}
	}

	if *seqDir != "" {
		if err = os.MkdirAll(*seqDir, 0777); err != nil {
			log.Fatal(err)
		}
	}
	for frame := 0; frame < *frames; frame++ {
		ticked, err := s.Step(anim)
		if err != nil {
			log.Fatal(err)
		}
		if !ticked || *seqDir == "" {
			continue
		}
		name := filepath.Join(*seqDir, fmt.Sprintf("%s_%05d.png", s.Name, anim.Ticks()))
		if err = writePreview(name, s, opt); err != nil {
			log.Fatal(err)
		}
	}
	if *stlPath != "" {
		if err = writeSTL(*stlPath, s); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *stlPath)
	}
	if *pngPath != "" {
		if err = writePreview(*pngPath, s, opt); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *pngPath)
	}
}

func writeSTL(path string, s *scene.Scene) error {
	world, err := s.WorldMesh()
	if err != nil {
		return err
	}
	r, err := render.NewMeshRenderer(world)
	if err != nil {
		return err
	}
	return render.CreateSTL(path, r)
}

func writePreview(path string, s *scene.Scene, opt preview.Options) error {
	img, err := preview.Scene(s, opt)
	if err != nil {
		return err
	}
	return preview.SavePNG(path, img)
}

// loadTextures decodes the texture files that exist. Missing textures are
// reported and left out so objects fall back to their flat color.
func loadTextures(paths map[string]string) map[string]image.Image {
	textures := make(map[string]image.Image)
	for name, path := range paths {
		img, err := decodeImage(path)
		if err != nil {
			log.Printf("texture %q not loaded: %s", name, err)
			continue
		}
		textures[name] = img
	}
	return textures
}

func decodeImage(path string) (image.Image, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	img, _, err := image.Decode(fp)
	return img, err
}
