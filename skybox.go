package glmesh

// SkyboxFaces lists cubemap faces in the order OpenGL numbers its
// GL_TEXTURE_CUBE_MAP_POSITIVE_X + i targets.
var SkyboxFaces = [6]string{"right", "left", "top", "bottom", "front", "back"}

// skyboxCube holds 12 triangles of a unit cube wound counter-clockwise
// when seen from inside, two per face in SkyboxFaces order.
var skyboxCube = [36 * 3]float32{
	// +X
	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,
	// -X
	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,
	// +Y
	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,
	// -Y
	-1, -1, -1, -1, -1, 1, 1, -1, 1,
	1, -1, 1, 1, -1, -1, -1, -1, -1,
	// +Z
	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,
	// -Z
	-1, -1, -1, 1, -1, -1, 1, 1, -1,
	1, 1, -1, -1, 1, -1, -1, -1, -1,
}

// SkyboxVertices returns the 36 unindexed positions of a cube with half side
// size centered at the origin, wound to be seen from inside. Positions
// double as cubemap sampling directions.
func SkyboxVertices(size float64) ([]float32, error) {
	if !isFinite(size) || size <= 0 {
		return nil, invalidParam("SkyboxVertices", "size must be positive and finite, got %g", size)
	}
	v := make([]float32, len(skyboxCube))
	for i, f := range skyboxCube {
		v[i] = f * float32(size)
	}
	return v, nil
}

// NewSkybox returns the skybox cube as an indexed mesh with sequential indices.
func NewSkybox(size float64) (*Mesh, error) {
	pos, err := SkyboxVertices(size)
	if err != nil {
		return nil, withOp("NewSkybox", err)
	}
	idx := make([]uint32, len(pos)/3)
	for i := range idx {
		idx[i] = uint32(i)
	}
	return &Mesh{Positions: pos, Indices: idx}, nil
}
