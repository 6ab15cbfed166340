package quads

import (
	_ "embed"
)

//go:embed shaders/quad.vert
var quadVertexShader string

//go:embed shaders/quad.frag
var quadFragmentShader string

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
}

// Default returns the program that draws a Scene: position at location 0,
// colour at location 1, colour passed straight through to the fragment stage.
func Default() Program {
	return Program{
		Name:           "quad",
		VertexShader:   quadVertexShader,
		FragmentShader: quadFragmentShader,
	}
}
