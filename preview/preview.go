// Package preview rasterizes meshes and scenes on the CPU into images so
// generated geometry can be inspected without an OpenGL context.
package preview

import (
	"errors"
	"image"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glmesh"
	"github.com/soypat/glmesh/internal/d3"
	"github.com/soypat/glmesh/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// Options configures the preview camera and output image.
type Options struct {
	// Output width and height in pixels.
	Width, Height int
	// Supersample renders at a multiple of the output size and downsamples
	// for antialiasing. Values below 1 are taken as 1.
	Supersample int
	// Camera position, view center and up direction.
	Eye, Center, Up r3.Vec
	// Vertical field of view in degrees.
	FOV       float64
	Near, Far float64
	// Light is the direction the light comes from.
	Light      r3.Vec
	Background glmesh.Color
	// Textures maps Object.Texture names to images.
	Textures map[string]image.Image
}

// DefaultOptions returns the view of the tutorial window: 600x600 looking at
// the origin from (0,0,3).
func DefaultOptions() Options {
	return Options{
		Width:       600,
		Height:      600,
		Supersample: 2,
		Eye:         r3.Vec{Z: 3},
		Up:          r3.Vec{Y: 1},
		FOV:         scene.DefaultFOV,
		Near:        scene.DefaultNear,
		Far:         scene.DefaultFar,
		Light:       r3.Vec{X: -0.75, Y: 1, Z: 0.25},
		Background:  glmesh.Color{0.2, 0.3, 0.3, 1},
	}
}

// FromCamera sets the view of opt to that of c.
func (opt *Options) FromCamera(c *scene.CameraState) {
	opt.Eye = c.Position
	opt.Center = r3.Add(c.Position, c.Front())
	opt.Up = r3.Vec{Y: 1}
	opt.FOV = c.FOV
	opt.Near = c.Near
	opt.Far = c.Far
}

// Fit moves the view center to the center of m's bounding box and the eye
// along the current view direction until the whole box is in view.
func (opt *Options) Fit(m *glmesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.VertexCount() == 0 {
		return errors.New("cannot fit view to empty mesh")
	}
	box := d3.BoundingBox(d3.SetFromBuffer(m.Positions))
	dir := r3.Sub(opt.Eye, opt.Center)
	if r3.Norm(dir) == 0 {
		dir = r3.Vec{Z: 1}
	}
	// Distance at which the bounding sphere touches the narrowest field of view.
	radius := r3.Norm(box.Size()) / 2
	fov := glmesh.DtoR(opt.FOV)
	if aspect := float64(opt.Width) / float64(opt.Height); aspect < 1 {
		fov = 2 * math.Atan(aspect*math.Tan(fov/2))
	}
	dist := radius / math.Sin(fov/2)
	opt.Center = box.Center()
	opt.Eye = r3.Add(opt.Center, r3.Scale(dist, r3.Unit(dir)))
	if far := dist + radius; opt.Far < far {
		opt.Far = far
	}
	return nil
}

func (opt Options) validate() error {
	if opt.Width <= 0 || opt.Height <= 0 {
		return errors.New("preview size must be positive")
	}
	if !(opt.Near > 0) || !(opt.Far > opt.Near) {
		return errors.New("preview clip planes must satisfy 0 < near < far")
	}
	if !(opt.FOV > 0) || opt.FOV >= 180 {
		return errors.New("preview field of view must be in (0, 180) degrees")
	}
	return nil
}

// item is a mesh to be drawn with its world transform and surface.
type item struct {
	mesh      *glmesh.Mesh
	transform scene.Transform
	color     glmesh.Color
	texture   fauxgl.Texture
	emissive  bool
}

// Mesh renders m alone with color used where m has no vertex colors.
func Mesh(m *glmesh.Mesh, color glmesh.Color, opt Options) (image.Image, error) {
	return draw([]item{{mesh: m, color: color}}, opt)
}

// Scene renders the foreground objects of s. Background objects such as
// the skybox are replaced by the background color. When s has a light
// source the light comes from it.
func Scene(s *scene.Scene, opt Options) (image.Image, error) {
	var items []item
	for _, obj := range s.Objects {
		if obj.Background {
			continue
		}
		it := item{mesh: obj.Mesh, transform: obj.Transform, color: obj.Color, emissive: obj.Emissive}
		if img, ok := opt.Textures[obj.Texture]; ok && obj.Mesh.TexCoords != nil {
			it.texture = fauxgl.NewImageTexture(img)
		}
		items = append(items, it)
	}
	if light := s.LightPosition(); r3.Norm(light) > 0 {
		opt.Light = light
	}
	return draw(items, opt)
}

func draw(items []item, opt Options) (image.Image, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	scale := opt.Supersample
	if scale < 1 {
		scale = 1
	}
	context := fauxgl.NewContext(opt.Width*scale, opt.Height*scale)
	context.ClearColorBufferWith(fauxColor(opt.Background))
	context.ClearDepthBuffer()
	// The Möbius band has no outside so both faces are drawn.
	context.Cull = fauxgl.CullNone

	aspect := float64(opt.Width) / float64(opt.Height)
	matrix := fauxgl.LookAt(fauxVec(opt.Eye), fauxVec(opt.Center), fauxVec(opt.Up)).
		Perspective(opt.FOV, aspect, opt.Near, opt.Far)
	light := fauxVec(opt.Light)
	if light == (fauxgl.Vector{}) {
		light = fauxgl.V(0, 0, 1)
	}
	for _, it := range items {
		mesh, err := fauxMesh(it)
		if err != nil {
			return nil, err
		}
		ambient := 0.25
		if it.emissive {
			ambient = 1
		}
		context.Shader = &shader{
			matrix:  matrix,
			light:   light.Normalize(),
			ambient: ambient,
			texture: it.texture,
		}
		context.DrawMesh(mesh)
	}
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(opt.Width), uint(opt.Height), img, resize.Bilinear)
	}
	return img, nil
}

// fauxMesh converts an indexed mesh to fauxgl triangles in world space.
func fauxMesh(it item) (*fauxgl.Mesh, error) {
	m := it.mesh
	if err := m.Validate(); err != nil {
		return nil, err
	}
	pos := make([]float32, len(m.Positions))
	it.transform.TransformBuffer(pos, m.Positions)
	tris := make([]*fauxgl.Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var v [3]fauxgl.Vertex
		for k := range v {
			idx := int(m.Indices[i+k])
			v[k].Position = fauxgl.V(float64(pos[3*idx]), float64(pos[3*idx+1]), float64(pos[3*idx+2]))
			if m.Normals != nil {
				v[k].Normal = fauxgl.V(float64(m.Normals[3*idx]), float64(m.Normals[3*idx+1]), float64(m.Normals[3*idx+2]))
			}
			if m.TexCoords != nil {
				v[k].Texture = fauxgl.V(float64(m.TexCoords[2*idx]), float64(m.TexCoords[2*idx+1]), 0)
			}
			if m.Colors != nil {
				c := m.Colors[4*idx : 4*idx+4]
				v[k].Color = fauxgl.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}
			} else {
				v[k].Color = fauxColor(it.color)
			}
		}
		if m.Normals == nil {
			n := v[1].Position.Sub(v[0].Position).Cross(v[2].Position.Sub(v[0].Position))
			if n.Length() == 0 {
				continue // Degenerate.
			}
			n = n.Normalize()
			v[0].Normal, v[1].Normal, v[2].Normal = n, n, n
		}
		tris = append(tris, fauxgl.NewTriangle(v[0], v[1], v[2]))
	}
	return fauxgl.NewTriangleMesh(tris), nil
}

// shader lights interpolated vertex colors or a texture with a two sided
// diffuse term.
type shader struct {
	matrix  fauxgl.Matrix
	light   fauxgl.Vector
	ambient float64
	texture fauxgl.Texture
}

func (s *shader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Output = s.matrix.MulPositionW(v.Position)
	return v
}

func (s *shader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	color := v.Color
	if s.texture != nil {
		color = s.texture.BilinearSample(v.Texture.X, v.Texture.Y)
	}
	diffuse := math.Abs(v.Normal.Normalize().Dot(s.light))
	f := math.Min(1, s.ambient+(1-s.ambient)*diffuse)
	return fauxgl.Color{R: color.R * f, G: color.G * f, B: color.B * f, A: 1}
}

func fauxVec(v r3.Vec) fauxgl.Vector { return fauxgl.V(v.X, v.Y, v.Z) }

func fauxColor(c glmesh.Color) fauxgl.Color {
	return fauxgl.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}
}

// STL renders a binary STL file fitted into a bi-unit cube centered at the
// origin with a flat object color.
func STL(path string, color glmesh.Color, opt Options) (image.Image, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	mesh, err := fauxgl.LoadSTL(path)
	if err != nil {
		return nil, err
	}
	mesh.BiUnitCube()
	scale := opt.Supersample
	if scale < 1 {
		scale = 1
	}
	context := fauxgl.NewContext(opt.Width*scale, opt.Height*scale)
	context.ClearColorBufferWith(fauxColor(opt.Background))
	aspect := float64(opt.Width) / float64(opt.Height)
	matrix := fauxgl.LookAt(fauxVec(opt.Eye), fauxVec(opt.Center), fauxVec(opt.Up)).
		Perspective(opt.FOV, aspect, opt.Near, opt.Far)
	phong := fauxgl.NewPhongShader(matrix, fauxVec(opt.Light).Normalize(), fauxVec(opt.Eye))
	phong.ObjectColor = fauxColor(color)
	context.Shader = phong
	context.DrawMesh(mesh)
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(opt.Width), uint(opt.Height), img, resize.Bilinear)
	}
	return img, nil
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}
