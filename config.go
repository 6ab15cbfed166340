package main

import "github.com/go-gl/mathgl/mgl32"

type Config struct {
	Width, Height int
	Title         string

	// Requested context version. The shaders are written against 3.3 core.
	GLMajor, GLMinor int

	SwapInterval int
	ClearColour  mgl32.Vec4
}

func DefaultConfig() Config {
	return Config{
		Width:        1920,
		Height:       1080,
		Title:        "Step 1",
		GLMajor:      3,
		GLMinor:      3,
		SwapInterval: 1,
		ClearColour:  mgl32.Vec4{0.1, 0.2, 0.3, 1.0},
	}
}
