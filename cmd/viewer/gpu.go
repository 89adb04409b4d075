//go:build cgo

package main

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/glmesh"
	"github.com/soypat/glmesh/scene"
)

// gpuObject holds the buffers of one scene object. Each vertex attribute
// lives in its own buffer so dynamic attributes can be rewritten alone.
type gpuObject struct {
	obj      *scene.Object
	vao      uint32
	pos      uint32
	normal   uint32
	color    uint32
	ebo      uint32
	count    int32
	lit      bool
	texture  uint32
	textured bool
}

func newGPUObject(obj *scene.Object, textures map[string]uint32) (*gpuObject, error) {
	m := obj.Mesh
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("object %q: %w", obj.Name, err)
	}
	g := &gpuObject{obj: obj, count: int32(len(m.Indices)), lit: m.Normals != nil && !obj.Emissive}
	if tex, ok := textures[obj.Texture]; ok && m.TexCoords != nil {
		g.texture, g.textured = tex, true
	}
	n := m.VertexCount()
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	g.pos = attribBuffer(attribPos, 3, m.Positions)
	normals := m.Normals
	if normals == nil {
		normals = make([]float32, 3*n)
	}
	g.normal = attribBuffer(attribNormal, 3, normals)
	texcoords := m.TexCoords
	if texcoords == nil {
		texcoords = make([]float32, 2*n)
	}
	attribBuffer(attribTex, 2, texcoords)
	g.color = attribBuffer(attribColor, 4, vertexColors(obj))

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(m.Indices), gl.Ptr(m.Indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
	return g, glError()
}

func attribBuffer(loc uint32, size int32, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointer(loc, size, gl.FLOAT, false, size*4, gl.PtrOffset(0))
	return vbo
}

func vertexColors(obj *scene.Object) []float32 {
	if obj.Mesh.Colors != nil {
		return obj.Mesh.Colors
	}
	n := obj.Mesh.VertexCount()
	colors := make([]float32, 0, 4*n)
	for i := 0; i < n; i++ {
		colors = append(colors, obj.Color[:]...)
	}
	return colors
}

// update rewrites the attributes animation may change.
func (g *gpuObject) update() {
	m := g.obj.Mesh
	subData(g.pos, m.Positions)
	if m.Normals != nil {
		subData(g.normal, m.Normals)
	}
	if m.Colors != nil {
		subData(g.color, m.Colors)
	}
}

func subData(vbo uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, 4*len(data), gl.Ptr(data))
}

func (g *gpuObject) draw(u *meshUniforms) {
	model := g.obj.Transform.ColumnMajor32()
	gl.UniformMatrix4fv(u.model, 1, false, &model[0])
	gl.Uniform1i(u.lit, boolToInt(g.lit))
	gl.Uniform1i(u.useTex, boolToInt(g.textured))
	if g.textured {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, g.texture)
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (g *gpuObject) delete() {
	buffers := []uint32{g.pos, g.normal, g.color, g.ebo}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	gl.DeleteVertexArrays(1, &g.vao)
}

type meshUniforms struct {
	model, view, proj int32
	lit, useTex, tex  int32
	lightPos          int32
}

func newMeshProgram() (glgl.Program, *meshUniforms, error) {
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   meshVertex,
		Fragment: meshFragment,
	})
	if err != nil {
		return prog, nil, err
	}
	prog.Bind()
	var u meshUniforms
	for _, loc := range []struct {
		dst  *int32
		name string
	}{
		{&u.model, "uModel\x00"},
		{&u.view, "uView\x00"},
		{&u.proj, "uProj\x00"},
		{&u.lit, "uLit\x00"},
		{&u.useTex, "uUseTex\x00"},
		{&u.tex, "uTex\x00"},
		{&u.lightPos, "uLightPos\x00"},
	} {
		*loc.dst, err = prog.UniformLocation(loc.name)
		if err != nil {
			return prog, nil, err
		}
	}
	gl.Uniform1i(u.tex, 0)
	return prog, &u, nil
}

type skyUniforms struct {
	view, proj, sky int32
}

func newSkyProgram() (glgl.Program, *skyUniforms, error) {
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   skyVertex,
		Fragment: skyFragment,
	})
	if err != nil {
		return prog, nil, err
	}
	prog.Bind()
	var u skyUniforms
	if u.view, err = prog.UniformLocation("uView\x00"); err != nil {
		return prog, nil, err
	}
	if u.proj, err = prog.UniformLocation("uProj\x00"); err != nil {
		return prog, nil, err
	}
	if u.sky, err = prog.UniformLocation("uSky\x00"); err != nil {
		return prog, nil, err
	}
	gl.Uniform1i(u.sky, 0)
	return prog, &u, nil
}

// skybox is a cubemap drawn around the camera after the scene.
type skybox struct {
	vao, vbo uint32
	cubemap  uint32
	count    int32
}

func newSkybox(m *glmesh.Mesh, faces [6]image.Image) (*skybox, error) {
	sb := &skybox{count: int32(m.VertexCount())}
	gl.GenVertexArrays(1, &sb.vao)
	gl.BindVertexArray(sb.vao)
	sb.vbo = attribBuffer(attribPos, 3, m.Positions)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &sb.cubemap)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.cubemap)
	for i, face := range faces {
		rgba := toRGBA(face, false)
		b := rgba.Bounds()
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	return sb, glError()
}

func (sb *skybox) draw(u *skyUniforms) {
	// Depth is written as 1 by the vertex shader so the box passes only
	// where nothing else was drawn.
	gl.DepthFunc(gl.LEQUAL)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.cubemap)
	gl.BindVertexArray(sb.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, sb.count)
	gl.DepthFunc(gl.LESS)
}

// newTexture uploads img as a mipmapped 2D texture.
func newTexture(img image.Image) (uint32, error) {
	rgba := toRGBA(img, true)
	b := rgba.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return tex, glError()
}

// toRGBA copies img into a tightly packed RGBA image. If flip is set rows
// are reversed so the first row is at the bottom as 2D textures expect.
// Cubemap faces are uploaded top row first.
func toRGBA(img image.Image, flip bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if !flip {
		return rgba
	}
	stride := rgba.Stride
	row := make([]byte, stride)
	for top, bot := 0, b.Dy()-1; top < bot; top, bot = top+1, bot-1 {
		t := rgba.Pix[top*stride : (top+1)*stride]
		u := rgba.Pix[bot*stride : (bot+1)*stride]
		copy(row, t)
		copy(t, u)
		copy(u, row)
	}
	return rgba
}

func glError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
