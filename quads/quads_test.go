package quads

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLayout(t *testing.T) {
	if Stride != 24 {
		t.Errorf("Stride = %v, want 24", Stride)
	}
	if ColorOffset != 12 {
		t.Errorf("ColorOffset = %v, want 12", ColorOffset)
	}
	if PositionOffset != 0 {
		t.Errorf("PositionOffset = %v, want 0", PositionOffset)
	}
}

func TestSceneVertices(t *testing.T) {
	s := NewScene()

	verts := s.Vertices()
	if len(verts) != 72 {
		t.Fatalf("len(Vertices()) = %v, want 72", len(verts))
	}

	// bottom left of the red quad
	want := []float32{-0.5, -0.5, 0, 1, 0, 0}
	for i, w := range want {
		if verts[i] != w {
			t.Errorf("verts[%v] = %v, want %v", i, verts[i], w)
		}
	}

	// top left of the purple quad is the last vertex
	last := verts[len(verts)-VertexSize:]
	want = []float32{-0.05, 0.05, 0, 1, 0, 1}
	for i, w := range want {
		if !mgl32.FloatEqual(last[i], w) {
			t.Errorf("last[%v] = %v, want %v", i, last[i], w)
		}
	}
}

func TestNewQuad(t *testing.T) {
	q := NewQuad(mgl32.Vec2{1, 2}, 0.25, Red)

	corners := []mgl32.Vec3{
		{0.75, 1.75, 0},
		{1.25, 1.75, 0},
		{1.25, 2.25, 0},
		{0.75, 1.75, 0},
		{1.25, 2.25, 0},
		{0.75, 2.25, 0},
	}
	for i, c := range corners {
		if !q[i].Pos.ApproxEqual(c) {
			t.Errorf("vertex %v at %v, want %v", i, q[i].Pos, c)
		}
		if q[i].Color != Red {
			t.Errorf("vertex %v colour %v, want %v", i, q[i].Color, Red)
		}
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		t    float64
		want float32
	}{
		{0, 0},
		{math.Pi / 2, 0.5},
		{math.Pi, 0},
		{3 * math.Pi / 2, -0.5},
	}

	for _, test := range tests {
		got := Offset(test.t)
		if !mgl32.FloatEqualThreshold(got, test.want, 1e-6) {
			t.Errorf("Offset(%v) = %v, want %v", test.t, got, test.want)
		}
	}

	for x := 0.0; x < 100; x += 0.37 {
		if o := Offset(x); o > Amplitude || o < -Amplitude {
			t.Fatalf("Offset(%v) = %v outside ±%v", x, o, Amplitude)
		}
	}
}

func TestAnimate(t *testing.T) {
	s := NewScene()
	before := s.Vertices()

	moved := s.Animate(math.Pi / 2)

	for i, v := range moved.Quads[0] {
		base := s.Quads[0][i]
		if !mgl32.FloatEqual(v.Pos.X(), base.Pos.X()+0.5) {
			t.Errorf("animated vertex %v x = %v, want %v", i, v.Pos.X(), base.Pos.X()+0.5)
		}
		if v.Pos.Y() != base.Pos.Y() || v.Pos.Z() != base.Pos.Z() {
			t.Errorf("animated vertex %v moved off the X axis: %v", i, v.Pos)
		}
		if v.Color != base.Color {
			t.Errorf("animated vertex %v colour changed to %v", i, v.Color)
		}
	}

	if moved.Quads[1] != s.Quads[1] {
		t.Errorf("second quad moved: %v", moved.Quads[1])
	}

	after := s.Vertices()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Animate mutated the base scene at %v", i)
		}
	}
}

func TestAnimateEmpty(t *testing.T) {
	s := Scene{}
	if got := s.Animate(1); len(got.Quads) != 0 {
		t.Errorf("Animate on empty scene returned %v quads", len(got.Quads))
	}
}

func TestDrawRanges(t *testing.T) {
	ranges := NewScene().DrawRanges()
	if len(ranges) != 4 {
		t.Fatalf("got %v triangles, want 4", len(ranges))
	}
	for i, r := range ranges {
		if r[0] != int32(i*3) || r[1] != 3 {
			t.Errorf("range %v = %v, want [%v 3]", i, r, i*3)
		}
	}
}

func TestDefaultProgram(t *testing.T) {
	p := Default()

	for _, want := range []string{
		"#version 330 core",
		"layout (location = 0) in vec3 aPos",
		"layout (location = 1) in vec3 aColor",
		"out vec3 vertexColor",
	} {
		if !strings.Contains(p.VertexShader, want) {
			t.Errorf("vertex shader missing %q", want)
		}
	}

	for _, want := range []string{
		"#version 330 core",
		"in vec3 vertexColor",
		"FragColor = vec4(vertexColor, 1.0)",
	} {
		if !strings.Contains(p.FragmentShader, want) {
			t.Errorf("fragment shader missing %q", want)
		}
	}
}
