package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/spritebatch"
)

// Program is a linked GLSL program with cached uniform locations.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

var _ spritebatch.Program = (*Program)(nil)

// CompileProgram compiles and links src. Vertex inputs are bound to the
// locations of src.Attributes in order before linking.
func (d *Device) CompileProgram(src spritebatch.ProgramSource) (spritebatch.Program, error) {
	p, err := NewProgram(src)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewProgram compiles and links src.
func NewProgram(src spritebatch.ProgramSource) (*Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	if id == 0 {
		return nil, errors.New("glCreateProgram returned 0")
	}
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	for i, name := range src.Attributes {
		gl.BindAttribLocation(id, uint32(i), gl.Str(name+"\x00"))
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(id, logLength, nil, &log[0])
		gl.DeleteProgram(id)
		return nil, errors.Errorf("shader program linking failed: %s", strings.TrimRight(string(log), "\x00"))
	}

	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)
	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	if shader == 0 {
		return 0, errors.New("glCreateShader returned 0")
	}
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.Errorf("compilation failed: %s", strings.TrimRight(string(log), "\x00"))
	}
	return shader, nil
}

// ID returns the OpenGL program name.
func (p *Program) ID() uint32 { return p.id }

// Use makes p the current program.
func (p *Program) Use() { gl.UseProgram(p.id) }

// Unuse clears the current program.
func (p *Program) Unuse() { gl.UseProgram(0) }

// Uniform returns the location of a uniform, -1 if the program has none
// by that name. Locations are cached.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetUniformMat4 sets a mat4 uniform of the current program.
func (p *Program) SetUniformMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

// SetUniformInt sets an int or sampler uniform of the current program.
func (p *Program) SetUniformInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

// Dispose deletes the program. Safe to call more than once.
func (p *Program) Dispose() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
	clear(p.uniforms)
}
