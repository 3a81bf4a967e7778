// Package gldriver implements render.Driver on top of OpenGL 4.1 core.
// It must only be used from the goroutine that owns the current context.
package gldriver

import (
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/samuelyuan/go-glharness/render"
)

type Driver struct{}

// New loads the OpenGL function pointers. A context must already be current.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Driver{}, nil
}

var _ render.Driver = (*Driver)(nil)

func clearErrors() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// check drains the error queue after a call to function. The reported
// location is the caller of the Driver method: check <- call <- method <- caller.
func check(function string) error {
	var codes []uint32
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	_, file, line, _ := runtime.Caller(3)
	return &render.CallError{
		Function: function,
		File:     filepath.Base(file),
		Line:     line,
		Codes:    codes,
	}
}

func call(function string, fn func()) error {
	clearErrors()
	fn()
	return check(function)
}

func stageToGl(stage render.Stage) uint32 {
	if stage == render.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func targetToGl(target render.BufferTarget) uint32 {
	if target == render.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func typeToGl(typ render.DataType) uint32 {
	switch typ {
	case render.UnsignedInt:
		return gl.UNSIGNED_INT
	case render.UnsignedByte:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

func (d *Driver) Version() (string, error) {
	var version string
	err := call("glGetString", func() {
		version = gl.GoStr(gl.GetString(gl.VERSION))
	})
	return version, err
}

func (d *Driver) CreateShader(stage render.Stage) (uint32, error) {
	var shader uint32
	err := call("glCreateShader", func() {
		shader = gl.CreateShader(stageToGl(stage))
	})
	return shader, err
}

func (d *Driver) ShaderSource(shader uint32, source string) error {
	return call("glShaderSource", func() {
		csources, free := gl.Strs(source + "\x00")
		gl.ShaderSource(shader, 1, csources, nil)
		free()
	})
}

func (d *Driver) CompileShader(shader uint32) error {
	return call("glCompileShader", func() {
		gl.CompileShader(shader)
	})
}

func (d *Driver) ShaderCompileStatus(shader uint32) (bool, string, error) {
	var status int32
	var infoLog string
	err := call("glGetShaderiv", func() {
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE {
			var logLength int32
			gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

			buf := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(buf))
			infoLog = strings.TrimRight(buf, "\x00")
		}
	})
	return status != gl.FALSE, infoLog, err
}

func (d *Driver) DeleteShader(shader uint32) error {
	return call("glDeleteShader", func() {
		gl.DeleteShader(shader)
	})
}

func (d *Driver) CreateProgram() (uint32, error) {
	var program uint32
	err := call("glCreateProgram", func() {
		program = gl.CreateProgram()
	})
	return program, err
}

func (d *Driver) AttachShader(program, shader uint32) error {
	return call("glAttachShader", func() {
		gl.AttachShader(program, shader)
	})
}

func (d *Driver) LinkProgram(program uint32) error {
	return call("glLinkProgram", func() {
		gl.LinkProgram(program)
	})
}

func (d *Driver) ProgramLinkStatus(program uint32) (bool, string, error) {
	return programStatus(program, gl.LINK_STATUS)
}

func (d *Driver) ValidateProgram(program uint32) error {
	return call("glValidateProgram", func() {
		gl.ValidateProgram(program)
	})
}

func (d *Driver) ProgramValidateStatus(program uint32) (bool, string, error) {
	return programStatus(program, gl.VALIDATE_STATUS)
}

func programStatus(program uint32, pname uint32) (bool, string, error) {
	var status int32
	var infoLog string
	err := call("glGetProgramiv", func() {
		gl.GetProgramiv(program, pname, &status)
		if status == gl.FALSE {
			var logLength int32
			gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

			buf := make([]byte, logLength+1)
			gl.GetProgramInfoLog(program, logLength, nil, &buf[0])
			infoLog = strings.TrimRight(string(buf), "\x00")
		}
	})
	return status != gl.FALSE, infoLog, err
}

func (d *Driver) UseProgram(program uint32) error {
	return call("glUseProgram", func() {
		gl.UseProgram(program)
	})
}

func (d *Driver) DeleteProgram(program uint32) error {
	return call("glDeleteProgram", func() {
		gl.DeleteProgram(program)
	})
}

func (d *Driver) GetUniformLocation(program uint32, name string) (int32, error) {
	var location int32
	err := call("glGetUniformLocation", func() {
		location = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	})
	return location, err
}

func (d *Driver) Uniform1i(location int32, v int32) error {
	return call("glUniform1i", func() {
		gl.Uniform1i(location, v)
	})
}

func (d *Driver) Uniform1f(location int32, v float32) error {
	return call("glUniform1f", func() {
		gl.Uniform1f(location, v)
	})
}

func (d *Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) error {
	return call("glUniform4f", func() {
		gl.Uniform4f(location, v0, v1, v2, v3)
	})
}

func (d *Driver) UniformMatrix4fv(location int32, m mgl32.Mat4) error {
	return call("glUniformMatrix4fv", func() {
		gl.UniformMatrix4fv(location, 1, false, &m[0])
	})
}

func (d *Driver) GetUniformfv(program uint32, location int32, out []float32) error {
	return call("glGetUniformfv", func() {
		gl.GetUniformfv(program, location, &out[0])
	})
}

func (d *Driver) GetUniformiv(program uint32, location int32, out []int32) error {
	return call("glGetUniformiv", func() {
		gl.GetUniformiv(program, location, &out[0])
	})
}

func (d *Driver) GenBuffer() (uint32, error) {
	var buffer uint32
	err := call("glGenBuffers", func() {
		gl.GenBuffers(1, &buffer)
	})
	return buffer, err
}

func (d *Driver) BindBuffer(target render.BufferTarget, buffer uint32) error {
	return call("glBindBuffer", func() {
		gl.BindBuffer(targetToGl(target), buffer)
	})
}

func (d *Driver) BufferData(target render.BufferTarget, size int, data interface{}) error {
	return call("glBufferData", func() {
		var ptr unsafe.Pointer
		if size > 0 {
			ptr = gl.Ptr(data)
		}
		gl.BufferData(targetToGl(target), size, ptr, gl.STATIC_DRAW)
	})
}

func (d *Driver) DeleteBuffer(buffer uint32) error {
	return call("glDeleteBuffers", func() {
		gl.DeleteBuffers(1, &buffer)
	})
}

func (d *Driver) GenVertexArray() (uint32, error) {
	var vao uint32
	err := call("glGenVertexArrays", func() {
		gl.GenVertexArrays(1, &vao)
	})
	return vao, err
}

func (d *Driver) BindVertexArray(vao uint32) error {
	return call("glBindVertexArray", func() {
		gl.BindVertexArray(vao)
	})
}

func (d *Driver) EnableVertexAttribArray(index uint32) error {
	return call("glEnableVertexAttribArray", func() {
		gl.EnableVertexAttribArray(index)
	})
}

func (d *Driver) VertexAttribPointer(index uint32, count int32, typ render.DataType, normalized bool, stride int32, offset int) error {
	return call("glVertexAttribPointer", func() {
		gl.VertexAttribPointerWithOffset(index, count, typeToGl(typ), normalized, stride, uintptr(offset))
	})
}

func (d *Driver) DeleteVertexArray(vao uint32) error {
	return call("glDeleteVertexArrays", func() {
		gl.DeleteVertexArrays(1, &vao)
	})
}

func (d *Driver) GenTexture() (uint32, error) {
	var tex uint32
	err := call("glGenTextures", func() {
		gl.GenTextures(1, &tex)
	})
	return tex, err
}

func (d *Driver) ActiveTexture(slot uint32) error {
	return call("glActiveTexture", func() {
		gl.ActiveTexture(gl.TEXTURE0 + slot)
	})
}

func (d *Driver) BindTexture(texture uint32) error {
	return call("glBindTexture", func() {
		gl.BindTexture(gl.TEXTURE_2D, texture)
	})
}

func (d *Driver) TexImage2D(width, height int32, pixels []uint8) error {
	return call("glTexImage2D", func() {
		gl.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA8), width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	})
}

func (d *Driver) TexLinearClamp() error {
	return call("glTexParameteri", func() {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	})
}

func (d *Driver) DeleteTexture(texture uint32) error {
	return call("glDeleteTextures", func() {
		gl.DeleteTextures(1, &texture)
	})
}

func (d *Driver) ClearColor(r, g, b, a float32) error {
	return call("glClearColor", func() {
		gl.ClearColor(r, g, b, a)
	})
}

func (d *Driver) Clear() error {
	return call("glClear", func() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	})
}

func (d *Driver) EnableBlending() error {
	return call("glBlendFunc", func() {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	})
}

func (d *Driver) DrawElements(count int32, typ render.DataType) error {
	return call("glDrawElements", func() {
		gl.DrawElements(gl.TRIANGLES, count, typeToGl(typ), nil)
	})
}
