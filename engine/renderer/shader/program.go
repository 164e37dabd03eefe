package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// program is the OpenGL implementation of the Program interface.
type program struct {
	id        uint32
	locations map[string]int32
}

// Program is a linked GLSL program that doubles as the Uniforms sink for the draw calls issued
// while it is in use. Uniform locations are looked up once per name and cached.
type Program interface {
	Uniforms

	// ID returns the GL program object name.
	ID() uint32

	// Use makes this program current.
	Use()

	// Delete releases the GL program object. Safe to call more than once.
	Delete()
}

var _ Program = &program{}

// NewProgram compiles the given shader stages and links them into a program.
// A current OpenGL context with loaded function pointers is required.
//
// Parameters:
//   - shaders: one shader per stage
//
// Returns:
//   - Program: the linked program
//   - error: compile or link errors, including the driver's info log
func NewProgram(shaders ...Shader) (Program, error) {
	id := gl.CreateProgram()

	compiled := make([]uint32, 0, len(shaders))
	defer func() {
		for _, obj := range compiled {
			gl.DeleteShader(obj)
		}
	}()

	for _, s := range shaders {
		obj, err := compileShader(s)
		if err != nil {
			gl.DeleteProgram(id)
			return nil, err
		}
		compiled = append(compiled, obj)
		gl.AttachShader(id, obj)
	}

	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("failed to link program: %s", strings.TrimRight(infoLog, "\x00"))
	}

	return &program{id: id, locations: make(map[string]int32)}, nil
}

// compileShader compiles a single stage and returns the GL shader object.
func compileShader(s Shader) (uint32, error) {
	var stage uint32
	switch s.Type() {
	case ShaderTypeVertex:
		stage = gl.VERTEX_SHADER
	case ShaderTypeFragment:
		stage = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("shader %s: unsupported stage %s", s.Key(), s.Type())
	}

	obj := gl.CreateShader(stage)
	csources, free := gl.Strs(s.Source() + "\x00")
	gl.ShaderSource(obj, 1, csources, nil)
	free()
	gl.CompileShader(obj)

	var status int32
	gl.GetShaderiv(obj, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(obj, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(obj, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(obj)
		return 0, fmt.Errorf("failed to compile %s shader %s: %s", s.Type(), s.Key(), strings.TrimRight(infoLog, "\x00"))
	}
	return obj, nil
}

func (p *program) ID() uint32 {
	return p.id
}

func (p *program) Use() {
	gl.UseProgram(p.id)
}

func (p *program) Delete() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
	p.locations = make(map[string]int32)
}

// location returns the cached uniform location, querying the driver on first use.
// Names the program does not declare resolve to -1 and are skipped by the setters.
func (p *program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *program) SetMat4(name string, value mgl32.Mat4) {
	if loc := p.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (p *program) SetVec2(name string, value mgl32.Vec2) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform2f(loc, value[0], value[1])
	}
}

func (p *program) SetVec3(name string, value mgl32.Vec3) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform3f(loc, value[0], value[1], value[2])
	}
}

func (p *program) SetVec4(name string, value mgl32.Vec4) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform4f(loc, value[0], value[1], value[2], value[3])
	}
}

func (p *program) SetFloat(name string, value float32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (p *program) SetInt(name string, value int32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (p *program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	p.SetInt(name, v)
}

func (p *program) SetSampler2D(name string, unit int32) {
	p.SetInt(name, unit)
}
