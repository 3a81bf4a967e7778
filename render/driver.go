package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// InvalidLocation is returned by the driver for uniforms the program does not use.
const InvalidLocation = int32(-1)

type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// DataType is the component type of a vertex attribute or index.
type DataType int

const (
	Float DataType = iota
	UnsignedInt
	UnsignedByte
)

// Size returns the size in bytes of one component.
func (t DataType) Size() int {
	switch t {
	case Float, UnsignedInt:
		return 4
	case UnsignedByte:
		return 1
	default:
		return 0
	}
}

// Driver is the boundary to the graphics API. Every call reports the error
// state the API was left in, so callers never have to poll for errors.
type Driver interface {
	Version() (string, error)

	CreateShader(stage Stage) (uint32, error)
	ShaderSource(shader uint32, source string) error
	CompileShader(shader uint32) error
	// ShaderCompileStatus returns whether the last compile succeeded and the info log.
	ShaderCompileStatus(shader uint32) (bool, string, error)
	DeleteShader(shader uint32) error

	CreateProgram() (uint32, error)
	AttachShader(program, shader uint32) error
	LinkProgram(program uint32) error
	ProgramLinkStatus(program uint32) (bool, string, error)
	ValidateProgram(program uint32) error
	ProgramValidateStatus(program uint32) (bool, string, error)
	UseProgram(program uint32) error
	DeleteProgram(program uint32) error

	GetUniformLocation(program uint32, name string) (int32, error)
	Uniform1i(location int32, v int32) error
	Uniform1f(location int32, v float32) error
	Uniform4f(location int32, v0, v1, v2, v3 float32) error
	UniformMatrix4fv(location int32, m mgl32.Mat4) error
	GetUniformfv(program uint32, location int32, out []float32) error
	GetUniformiv(program uint32, location int32, out []int32) error

	GenBuffer() (uint32, error)
	BindBuffer(target BufferTarget, buffer uint32) error
	// BufferData uploads size bytes from data, a slice of fixed size values.
	BufferData(target BufferTarget, size int, data interface{}) error
	DeleteBuffer(buffer uint32) error

	GenVertexArray() (uint32, error)
	BindVertexArray(vao uint32) error
	EnableVertexAttribArray(index uint32) error
	VertexAttribPointer(index uint32, count int32, typ DataType, normalized bool, stride int32, offset int) error
	DeleteVertexArray(vao uint32) error

	GenTexture() (uint32, error)
	ActiveTexture(slot uint32) error
	BindTexture(texture uint32) error
	// TexImage2D uploads tightly packed RGBA8 pixels.
	TexImage2D(width, height int32, pixels []uint8) error
	TexLinearClamp() error
	DeleteTexture(texture uint32) error

	ClearColor(r, g, b, a float32) error
	Clear() error
	EnableBlending() error
	DrawElements(count int32, typ DataType) error
}

// CallError reports a driver call that left errors pending in the graphics API.
type CallError struct {
	Function string
	File     string
	Line     int
	Codes    []uint32
}

func (e *CallError) Error() string {
	return fmt.Sprintf("[OpenGL Error] %v in %s (%s:%d)", e.Codes, e.Function, e.File, e.Line)
}
