package quads

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	Red    = mgl32.Vec3{1, 0, 0}
	Purple = mgl32.Vec3{1, 0, 1}
)

// Amplitude of the X oscillation in normalised device coordinates.
const Amplitude = 0.5

type Vertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
}

const VerticesPerQuad = 6

// Quad is two triangles: bottom left, bottom right, top right, then
// bottom left, top right, top left.
type Quad [VerticesPerQuad]Vertex

func NewQuad(center mgl32.Vec2, halfSize float32, color mgl32.Vec3) Quad {
	left, right := center.X()-halfSize, center.X()+halfSize
	bottom, top := center.Y()-halfSize, center.Y()+halfSize

	return Quad{
		{Pos: mgl32.Vec3{left, bottom, 0}, Color: color},
		{Pos: mgl32.Vec3{right, bottom, 0}, Color: color},
		{Pos: mgl32.Vec3{right, top, 0}, Color: color},

		{Pos: mgl32.Vec3{left, bottom, 0}, Color: color},
		{Pos: mgl32.Vec3{right, top, 0}, Color: color},
		{Pos: mgl32.Vec3{left, top, 0}, Color: color},
	}
}

func (q Quad) Translate(offset mgl32.Vec3) Quad {
	for i := range q {
		q[i].Pos = q[i].Pos.Add(offset)
	}
	return q
}

// Scene holds the quads in draw order. The first quad is the animated one.
type Scene struct {
	Quads []Quad
}

func NewScene() Scene {
	return Scene{
		Quads: []Quad{
			NewQuad(mgl32.Vec2{0, 0}, 0.5, Red),
			NewQuad(mgl32.Vec2{0, 0}, 0.05, Purple),
		},
	}
}

func (s Scene) NumVertices() int {
	return len(s.Quads) * VerticesPerQuad
}

// Vertices flattens the scene into the interleaved buffer described in layout.go.
func (s Scene) Vertices() []float32 {
	return s.AppendVertices(make([]float32, 0, s.NumVertices()*VertexSize))
}

func (s Scene) AppendVertices(buf []float32) []float32 {
	for _, q := range s.Quads {
		for _, v := range q {
			buf = append(buf, v.Pos[:]...)
			buf = append(buf, v.Color[:]...)
		}
	}
	return buf
}

// Offset is the X offset of the animated quad t seconds after start.
func Offset(t float64) float32 {
	return float32(Amplitude * math.Sin(t))
}

// Animate returns a copy of s with the first quad moved along X by Offset(t).
// s itself is left untouched.
func (s Scene) Animate(t float64) Scene {
	if len(s.Quads) == 0 {
		return s
	}

	quads := make([]Quad, len(s.Quads))
	copy(quads, s.Quads)
	quads[0] = quads[0].Translate(mgl32.Vec3{Offset(t), 0, 0})

	return Scene{Quads: quads}
}

// DrawRanges returns the (first, count) vertex range of every triangle.
func (s Scene) DrawRanges() [][2]int32 {
	n := s.NumVertices() / 3
	ranges := make([][2]int32, n)
	for i := range ranges {
		ranges[i] = [2]int32{int32(i * 3), 3}
	}
	return ranges
}
