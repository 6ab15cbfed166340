package quads

// Interleaved vertex layout: x, y, z, r, g, b.
const (
	FloatSize    = 4 // a float32 is 4 bytes
	PositionSize = 3
	ColorSize    = 3
	VertexSize   = PositionSize + ColorSize

	Stride         = VertexSize * FloatSize
	PositionOffset = 0
	ColorOffset    = PositionSize * FloatSize
)

// Attribute locations, matching the layout qualifiers in shaders/quad.vert.
const (
	PositionLocation = 0
	ColorLocation    = 1
)
