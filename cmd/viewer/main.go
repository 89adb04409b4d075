//go:build cgo

// Command viewer opens an OpenGL window and draws one of the tutorial
// scenes. WASD plus Space and Shift fly the camera, the mouse looks around
// and the scroll wheel zooms. Escape closes the window.
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
	"runtime"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/glmesh"
	"github.com/soypat/glmesh/config"
	"github.com/soypat/glmesh/scene"
)

func init() {
	runtime.LockOSThread()
}

var moveKeys = map[glfw.Key]scene.Direction{
	glfw.KeyW:         scene.Forward,
	glfw.KeyS:         scene.Backward,
	glfw.KeyA:         scene.Left,
	glfw.KeyD:         scene.Right,
	glfw.KeySpace:     scene.Up,
	glfw.KeyLeftShift: scene.Down,
}

func main() {
	var (
		cfgPath   = flag.String("config", "glmesh.toml", "TOML configuration file. Defaults are used if not found.")
		sceneName = flag.String("scene", "", fmt.Sprintf("scene to draw, one of %v. Overrides configuration.", scene.Names()))
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
	params := cfg.Params()
	s, err := scene.Build(cfg.Scene, params)
	if err != nil {
		log.Fatal(err)
	}
	anim, err := scene.NewAnimation(params)
	if err != nil {
		log.Fatal(err)
	}

	window, terminate, err := glgl.InitWithCurrentWindow33(glgl.WindowConfig{
		Title:   cfg.Window.Title + " " + s.Name,
		Version: [2]int{3, 3},
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
	})
	if err != nil {
		log.Fatal("FAIL to start GLFW: ", err.Error())
	}
	defer terminate()

	err = run(window, cfg, s, anim)
	if err != nil {
		log.Fatal(err)
	}
}

func run(window *glfw.Window, cfg config.Config, s *scene.Scene, anim *scene.AnimationState) error {
	meshProg, mu, err := newMeshProgram()
	if err != nil {
		return err
	}
	skyProg, su, err := newSkyProgram()
	if err != nil {
		return err
	}

	textures := make(map[string]uint32)
	for name, path := range cfg.Textures {
		img, err := decodeImage(path)
		if err != nil {
			log.Printf("texture %q not loaded: %s", name, err)
			continue
		}
		textures[name], err = newTexture(img)
		if err != nil {
			return err
		}
	}

	var objects []*gpuObject
	var sky *skybox
	for _, obj := range s.Objects {
		if obj.Background {
			faces, err := loadSkyboxFaces(cfg.Skybox)
			if err != nil {
				log.Printf("skybox not loaded: %s", err)
				continue
			}
			sky, err = newSkybox(obj.Mesh, faces)
			if err != nil {
				return err
			}
			continue
		}
		g, err := newGPUObject(obj, textures)
		if err != nil {
			return err
		}
		defer g.delete()
		objects = append(objects, g)
	}

	cam := scene.NewCamera()
	var (
		firstMouse   = true
		lastX, lastY float64
	)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if firstMouse {
			lastX, lastY = x, y
			firstMouse = false
		}
		// Screen y grows downwards.
		cam.Look(x-lastX, lastY-y)
		lastX, lastY = x, y
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cam.Zoom(yoff)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	gl.Enable(gl.DEPTH_TEST)
	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - lastTime
		lastTime = now
		for key, dir := range moveKeys {
			if window.GetKey(key) == glfw.Press {
				cam.Move(dir, dt)
			}
		}

		ticked, err := s.Step(anim)
		if err != nil {
			return err
		}
		if ticked {
			for _, g := range objects {
				if g.obj.Dynamic {
					g.update()
				}
			}
		}

		width, height := window.GetFramebufferSize()
		if width == 0 || height == 0 {
			// Minimized.
			glfw.PollEvents()
			continue
		}
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(0.1, 0.1, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		view := cam.View().ColumnMajor32()
		proj := cam.Projection(float64(width) / float64(height)).ColumnMajor32()

		// The light follows the sun along its orbit.
		light := s.LightPosition()
		meshProg.Bind()
		gl.UniformMatrix4fv(mu.view, 1, false, &view[0])
		gl.UniformMatrix4fv(mu.proj, 1, false, &proj[0])
		gl.Uniform3f(mu.lightPos, float32(light.X), float32(light.Y), float32(light.Z))
		for _, g := range objects {
			g.draw(mu)
		}
		if sky != nil {
			skyProg.Bind()
			gl.UniformMatrix4fv(su.view, 1, false, &view[0])
			gl.UniformMatrix4fv(su.proj, 1, false, &proj[0])
			sky.draw(su)
		}
		if err = glError(); err != nil {
			return err
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// loadSkyboxFaces reads the cubemap faces in glmesh.SkyboxFaces order.
func loadSkyboxFaces(cfg config.Skybox) (faces [6]image.Image, err error) {
	for i, name := range glmesh.SkyboxFaces {
		faces[i], err = decodeImage(filepath.Join(cfg.Dir, name+cfg.Ext))
		if err != nil {
			return faces, err
		}
	}
	return faces, nil
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
