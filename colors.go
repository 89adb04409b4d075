package glmesh

// Color is a linear RGBA color with channels in [0, 1].
type Color [4]float32

// DefaultMobiusColors is the per-vertex color table of the tutorial band.
// Bands with more vertices than colors reuse the table from the start.
var DefaultMobiusColors = []Color{
	{0.583, 0.771, 0.014, 1.0},
	{0.609, 0.115, 0.436, 1.0},
	{0.327, 0.483, 0.844, 1.0},
	{0.822, 0.569, 0.201, 1.0},
	{0.435, 0.602, 0.223, 1.0},
	{0.310, 0.747, 0.185, 1.0},
	{0.597, 0.770, 0.761, 1.0},
	{0.559, 0.436, 0.730, 1.0},
	{0.359, 0.583, 0.152, 1.0},
	{0.483, 0.596, 0.789, 1.0},
	{0.559, 0.861, 0.639, 1.0},
	{0.195, 0.548, 0.859, 1.0},
	{0.014, 0.184, 0.576, 1.0},
	{0.771, 0.328, 0.970, 1.0},
	{0.406, 0.615, 0.116, 1.0},
	{0.676, 0.977, 0.133, 1.0},
	{0.971, 0.572, 0.833, 1.0},
	{0.140, 0.616, 0.489, 1.0},
	{0.997, 0.513, 0.064, 1.0},
	{0.945, 0.719, 0.592, 1.0},
	{0.543, 0.021, 0.978, 1.0},
	{0.279, 0.317, 0.505, 1.0},
	{0.167, 0.620, 0.077, 1.0},
	{0.347, 0.857, 0.137, 1.0},
	{0.055, 0.953, 0.042, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.225, 0.587, 0.040, 1.0},
	{0.517, 0.713, 0.338, 1.0},
	{0.053, 0.959, 0.120, 1.0},
	{0.393, 0.621, 0.362, 1.0},
	{0.673, 0.211, 0.457, 1.0},
	{0.820, 0.883, 0.371, 1.0},
	{0.982, 0.099, 0.879, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.583, 0.771, 0.014, 1.0},
	{0.609, 0.115, 0.436, 1.0},
	{0.327, 0.483, 0.844, 1.0},
	{0.822, 0.569, 0.201, 1.0},
	{0.435, 0.602, 0.223, 1.0},
	{0.310, 0.747, 0.185, 1.0},
	{0.597, 0.770, 0.761, 1.0},
	{0.559, 0.436, 0.730, 1.0},
	{0.359, 0.583, 0.152, 1.0},
	{0.483, 0.596, 0.789, 1.0},
	{0.559, 0.861, 0.639, 1.0},
	{0.195, 0.548, 0.859, 1.0},
	{0.014, 0.184, 0.576, 1.0},
	{0.771, 0.328, 0.970, 1.0},
	{0.406, 0.615, 0.116, 1.0},
	{0.676, 0.977, 0.133, 1.0},
	{0.971, 0.572, 0.833, 1.0},
	{0.140, 0.616, 0.489, 1.0},
	{0.997, 0.513, 0.064, 1.0},
	{0.945, 0.719, 0.592, 1.0},
	{0.543, 0.021, 0.978, 1.0},
	{0.279, 0.317, 0.505, 1.0},
	{0.167, 0.620, 0.077, 1.0},
	{0.347, 0.857, 0.137, 1.0},
	{0.055, 0.953, 0.042, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.225, 0.587, 0.040, 1.0},
	{0.517, 0.713, 0.338, 1.0},
	{0.053, 0.959, 0.120, 1.0},
	{0.393, 0.621, 0.362, 1.0},
	{0.673, 0.211, 0.457, 1.0},
	{0.820, 0.883, 0.371, 1.0},
	{0.982, 0.099, 0.879, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.583, 0.771, 0.014, 1.0},
	{0.609, 0.115, 0.436, 1.0},
	{0.327, 0.483, 0.844, 1.0},
	{0.822, 0.569, 0.201, 1.0},
	{0.435, 0.602, 0.223, 1.0},
	{0.310, 0.747, 0.185, 1.0},
	{0.597, 0.770, 0.761, 1.0},
	{0.559, 0.436, 0.730, 1.0},
	{0.359, 0.583, 0.152, 1.0},
	{0.483, 0.596, 0.789, 1.0},
	{0.559, 0.861, 0.639, 1.0},
	{0.195, 0.548, 0.859, 1.0},
	{0.014, 0.184, 0.576, 1.0},
	{0.771, 0.328, 0.970, 1.0},
	{0.406, 0.615, 0.116, 1.0},
	{0.676, 0.977, 0.133, 1.0},
	{0.971, 0.572, 0.833, 1.0},
	{0.140, 0.616, 0.489, 1.0},
	{0.997, 0.513, 0.064, 1.0},
	{0.945, 0.719, 0.592, 1.0},
	{0.543, 0.021, 0.978, 1.0},
	{0.279, 0.317, 0.505, 1.0},
	{0.167, 0.620, 0.077, 1.0},
	{0.347, 0.857, 0.137, 1.0},
	{0.055, 0.953, 0.042, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.225, 0.587, 0.040, 1.0},
	{0.517, 0.713, 0.338, 1.0},
	{0.053, 0.959, 0.120, 1.0},
	{0.393, 0.621, 0.362, 1.0},
	{0.673, 0.211, 0.457, 1.0},
	{0.820, 0.883, 0.371, 1.0},
	{0.982, 0.099, 0.879, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.583, 0.771, 0.014, 1.0},
	{0.609, 0.115, 0.436, 1.0},
	{0.327, 0.483, 0.844, 1.0},
	{0.822, 0.569, 0.201, 1.0},
	{0.435, 0.602, 0.223, 1.0},
	{0.310, 0.747, 0.185, 1.0},
	{0.597, 0.770, 0.761, 1.0},
	{0.559, 0.436, 0.730, 1.0},
	{0.359, 0.583, 0.152, 1.0},
	{0.483, 0.596, 0.789, 1.0},
	{0.559, 0.861, 0.639, 1.0},
	{0.195, 0.548, 0.859, 1.0},
	{0.014, 0.184, 0.576, 1.0},
	{0.771, 0.328, 0.970, 1.0},
	{0.406, 0.615, 0.116, 1.0},
	{0.676, 0.977, 0.133, 1.0},
	{0.971, 0.572, 0.833, 1.0},
	{0.140, 0.616, 0.489, 1.0},
	{0.997, 0.513, 0.064, 1.0},
	{0.945, 0.719, 0.592, 1.0},
	{0.543, 0.021, 0.978, 1.0},
	{0.279, 0.317, 0.505, 1.0},
	{0.167, 0.620, 0.077, 1.0},
	{0.347, 0.857, 0.137, 1.0},
	{0.055, 0.953, 0.042, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.225, 0.587, 0.040, 1.0},
	{0.517, 0.713, 0.338, 1.0},
	{0.053, 0.959, 0.120, 1.0},
	{0.393, 0.621, 0.362, 1.0},
	{0.673, 0.211, 0.457, 1.0},
	{0.820, 0.883, 0.371, 1.0},
	{0.982, 0.099, 0.879, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.543, 0.021, 0.978, 1.0},
	{0.279, 0.317, 0.505, 1.0},
	{0.167, 0.620, 0.077, 1.0},
	{0.347, 0.857, 0.137, 1.0},
	{0.055, 0.953, 0.042, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.225, 0.587, 0.040, 1.0},
	{0.517, 0.713, 0.338, 1.0},
	{0.053, 0.959, 0.120, 1.0},
	{0.393, 0.621, 0.362, 1.0},
	{0.673, 0.211, 0.457, 1.0},
	{0.820, 0.883, 0.371, 1.0},
	{0.982, 0.099, 0.879, 1.0},
	{0.714, 0.505, 0.345, 1.0},
	{0.783, 0.290, 0.734, 1.0},
	{0.722, 0.645, 0.174, 1.0},
	{0.302, 0.455, 0.848, 1.0},
	{0.583, 0.771, 0.014, 1.0},
	{0.609, 0.115, 0.436, 1.0},
	{0.327, 0.483, 0.844, 1.0},
	{0.822, 0.569, 0.201, 1.0},
	{0.435, 0.602, 0.223, 1.0},
	{0.310, 0.747, 0.185, 1.0},
	{0.597, 0.770, 0.761, 1.0},
	{0.559, 0.436, 0.730, 1.0},
	{0.359, 0.583, 0.152, 1.0},
	{0.310, 0.747, 0.185, 1.0},
	{0.597, 0.770, 0.761, 1.0},
	{0.559, 0.436, 0.730, 1.0},
}

// ColorRing cycles a color table by keeping a rotation offset into it
// instead of moving the colors themselves.
// The zero value is not usable, use NewColorRing.
type ColorRing struct {
	colors []Color
	offset int
}

// NewColorRing returns a ring over a copy of colors.
func NewColorRing(colors []Color) (*ColorRing, error) {
	if len(colors) == 0 {
		return nil, invalidParam("NewColorRing", "empty color table")
	}
	c := make([]Color, len(colors))
	copy(c, colors)
	return &ColorRing{colors: c}, nil
}

// Len returns the number of colors in the ring.
func (r *ColorRing) Len() int { return len(r.colors) }

// Offset returns the index in the original table of the first color.
func (r *ColorRing) Offset() int { return r.offset }

// Rotate moves the first n colors to the back of the ring. Negative n rotates
// the other way.
func (r *ColorRing) Rotate(n int) {
	l := len(r.colors)
	r.offset = ((r.offset+n)%l + l) % l
}

// At returns the i'th color of the rotated ring. i wraps around the ring length.
func (r *ColorRing) At(i int) Color {
	l := len(r.colors)
	return r.colors[((r.offset+i)%l+l)%l]
}

// Fill writes the rotated ring as flat RGBA into dst, repeating the ring
// when dst holds more colors than the ring. Trailing floats that do not make
// up a full color are left untouched.
func (r *ColorRing) Fill(dst []float32) {
	for i := 0; 4*i+3 < len(dst); i++ {
		c := r.At(i)
		copy(dst[4*i:4*i+4], c[:])
	}
}
