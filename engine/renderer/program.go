// package renderer implements the OpenGL backend: the shader program that
// receives uniform writes and the texture device the registry uploads through.
package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenecraft/glstage/engine/shaderstate"
	"github.com/scenecraft/glstage/internal/logger"
	"go.uber.org/zap"
)

// program is the implementation of the Program interface.
type program struct {
	handle    uint32
	locations map[string]int32
}

// Program is a compiled and linked GLSL shader program that acts as the
// shader state sink. Uniform writes resolve names through a location cache;
// writes to names the program does not declare are silently dropped, which
// lets draw state degrade gracefully on lookup misses.
type Program interface {
	shaderstate.Sink

	// Use makes this program the active GL program. Must be called before
	// any uniform writes take effect.
	Use()

	// Handle returns the underlying GL program object name.
	//
	// Returns:
	//   - uint32: the GL program handle
	Handle() uint32

	// Release deletes the GL program object. Idempotent.
	Release()
}

var _ Program = &program{}

// NewProgram compiles the given vertex and fragment shader sources and links
// them into a program. Requires a current GL context on the calling thread.
//
// Parameters:
//   - vertexSrc: the vertex shader GLSL source
//   - fragmentSrc: the fragment shader GLSL source
//
// Returns:
//   - Program: the linked program
//   - error: error if compilation or linking fails
func NewProgram(vertexSrc, fragmentSrc string) (Program, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, err
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)
	gl.LinkProgram(handle)

	gl.DetachShader(handle, vert)
	gl.DeleteShader(vert)
	gl.DetachShader(handle, frag)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(handle)
		gl.DeleteProgram(handle)
		logger.Log.Error("shader program link failed", zap.String("log", infoLog))
		return nil, fmt.Errorf("renderer: failed to link program: %s", infoLog)
	}

	return &program{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

// compileShader compiles a single shader stage.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		logger.Log.Error("shader compile failed",
			zap.Uint32("type", shaderType),
			zap.String("log", infoLog))
		return 0, fmt.Errorf("renderer: failed to compile shader: %s", infoLog)
	}
	return shader, nil
}

// programInfoLog fetches the link info log for a program object.
func programInfoLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(infoLog))
	return infoLog
}

func (p *program) Use() {
	gl.UseProgram(p.handle)
}

func (p *program) Handle() uint32 {
	return p.handle
}

func (p *program) Release() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// location resolves and caches a uniform location. Returns -1 for names the
// program does not declare, matching GL's own sentinel.
func (p *program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *program) SetMat4(name string, value mgl32.Mat4) {
	if loc := p.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (p *program) SetVec4(name string, value mgl32.Vec4) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform4fv(loc, 1, &value[0])
	}
}

func (p *program) SetVec3(name string, value mgl32.Vec3) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform3fv(loc, 1, &value[0])
	}
}

func (p *program) SetVec2(name string, value mgl32.Vec2) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform2fv(loc, 1, &value[0])
	}
}

func (p *program) SetFloat(name string, value float32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (p *program) SetBool(name string, value bool) {
	if loc := p.location(name); loc != -1 {
		var v int32
		if value {
			v = 1
		}
		gl.Uniform1i(loc, v)
	}
}

func (p *program) SetSampler(name string, slot int32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1i(loc, slot)
	}
}
