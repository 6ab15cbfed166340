package main

import (
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stewi1014/glquads/quads"
)

// NewRenderer uploads scene and sets up the vertex layout. A compile or link
// failure is returned alongside a usable Renderer; drawing then produces nothing.
func NewRenderer(program quads.Program, scene quads.Scene) (*Renderer, error) {
	r := &Renderer{
		scene:    scene,
		vertices: scene.Vertices(),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*quads.FloatSize, gl.Ptr(r.vertices), gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(quads.PositionLocation)
	gl.VertexAttribPointerWithOffset(quads.PositionLocation, quads.PositionSize, gl.FLOAT, false, quads.Stride, quads.PositionOffset)

	gl.EnableVertexAttribArray(quads.ColorLocation)
	gl.VertexAttribPointerWithOffset(quads.ColorLocation, quads.ColorSize, gl.FLOAT, false, quads.Stride, quads.ColorOffset)

	err := r.loadProgram(program)
	if err != nil {
		return r, fmt.Errorf("program %v: %w", program.Name, err)
	}

	return r, nil
}

type Renderer struct {
	vao     uint32
	vbo     uint32
	program uint32
	linked  bool

	scene    quads.Scene
	vertices []float32
}

// Draw renders the scene as it is t seconds after start.
func (r *Renderer) Draw(t float64) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.linked {
		gl.UseProgram(r.program)
		gl.BindVertexArray(r.vao)

		r.vertices = r.scene.Animate(t).AppendVertices(r.vertices[:0])
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.vertices)*quads.FloatSize, gl.Ptr(r.vertices))

		for _, tri := range r.scene.DrawRanges() {
			gl.DrawArrays(gl.TRIANGLES, tri[0], tri[1])
		}
	}

	for {
		glerr := gl.GetError()
		if glerr == gl.NO_ERROR {
			break
		}
		log.Println(glErrorName(glerr))
	}
}

func (r *Renderer) Delete() {
	gl.DeleteProgram(r.program)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
}

func (r *Renderer) loadProgram(program quads.Program) error {
	vertexShader, vertexErr := compileShader(program.VertexShader+"\x00", gl.VERTEX_SHADER)
	fragmentShader, fragmentErr := compileShader(program.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	defer gl.DeleteShader(vertexShader)
	defer gl.DeleteShader(fragmentShader)

	if vertexErr != nil {
		return fmt.Errorf("vertex %w", vertexErr)
	}
	if fragmentErr != nil {
		return fmt.Errorf("fragment %w", fragmentErr)
	}

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vertexShader)
	gl.AttachShader(r.program, fragmentShader)
	gl.LinkProgram(r.program)

	var status int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(r.program, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(r.program, l, nil, gl.Str(log))
		return fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	r.linked = true
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		return shader, fmt.Errorf("shader failed to compile: %v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

var glErrors = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	0x503:                            "GL_STACK_OVERFLOW",
	0x504:                            "GL_STACK_UNDERFLOW",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

func glErrorName(code uint32) string {
	if name, ok := glErrors[code]; ok {
		return name
	}
	return fmt.Sprintf("GL_ERROR_UNKNOWN(0x%x)", code)
}
