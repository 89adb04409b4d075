package glmesh

// StripToTriangles converts a triangle strip into a triangle list by sliding a
// three index window over the strip one index at a time. A strip of n indices
// yields n-2 triangles. The winding of every second triangle is reversed
// with respect to the first, see FixWinding.
func StripToTriangles(strip []uint32) []uint32 {
	if len(strip) < 3 {
		return nil
	}
	return appendStripTriangles(make([]uint32, 0, 3*(len(strip)-2)), strip)
}

func appendStripTriangles(dst, strip []uint32) []uint32 {
	for i := 0; i+2 < len(strip); i++ {
		dst = append(dst, strip[i], strip[i+1], strip[i+2])
	}
	return dst
}

// FixWinding swaps the last two indices of every second triangle of a list
// built by StripToTriangles so all triangles share the winding of the first.
func FixWinding(tris []uint32) error {
	if len(tris)%3 != 0 {
		return invalidParam("FixWinding", "triangle list length %d not a multiple of 3", len(tris))
	}
	for i := 3; i < len(tris); i += 6 {
		tris[i+1], tris[i+2] = tris[i+2], tris[i+1]
	}
	return nil
}
