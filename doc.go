// Package glmesh generates the procedural geometry of a set of OpenGL tutorial
// scenes: a colored Möbius band, UV spheres with texture coordinates, a sun
// sphere orbiting a spinning planet and a skybox cube.
//
// Vertex data is returned as flat float32 buffers and index data as uint32
// triangle lists so they can be uploaded to the GPU as is.
//
//	pos, _ := glmesh.SphereVertices(8, 16, 0.5, r3.Vec{})
//	idx, _ := glmesh.SphereIndices(8, 16)
//
// Errors wrap ErrInvalidParameter or ErrDomain.
package glmesh

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
