package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samuelyuan/go-glharness/shaderfile"
)

// ErrNotBound is returned by the uniform setters when the program is not the
// current program of its context, since the upload would land elsewhere.
var ErrNotBound = errors.New("shader program is not bound")

// ShaderProgram is a linked vertex+fragment program built from one combined
// shader file. The program exclusively owns its handle.
type ShaderProgram struct {
	ctx    *Context
	path   string
	handle uint32

	uniforms map[string]int32
}

// NewShaderProgram parses, compiles and links the shader file at path.
// It never returns a program without a valid handle.
func NewShaderProgram(ctx *Context, path string) (*ShaderProgram, error) {
	sources, err := shaderfile.Load(path)
	if err != nil {
		return nil, err
	}

	handle, err := LinkProgram(ctx, sources.Vertex, sources.Fragment)
	if err != nil {
		ctx.Logger.Error("shader build failed", "path", path, "err", err)
		return nil, fmt.Errorf("build shader %q: %w", path, err)
	}
	ctx.Logger.Debug("shader built", "path", path, "program", handle)

	return &ShaderProgram{
		ctx:      ctx,
		path:     path,
		handle:   handle,
		uniforms: make(map[string]int32),
	}, nil
}

// CompileShader compiles one stage. A rejected shader object is deleted
// before the CompileError is returned.
func CompileShader(ctx *Context, stage Stage, source string) (uint32, error) {
	d := ctx.Driver

	shader, err := d.CreateShader(stage)
	if err != nil {
		return 0, err
	}
	if err := d.ShaderSource(shader, source); err != nil {
		deleteShader(ctx, shader)
		return 0, err
	}
	if err := d.CompileShader(shader); err != nil {
		deleteShader(ctx, shader)
		return 0, err
	}

	ok, infoLog, err := d.ShaderCompileStatus(shader)
	if err != nil {
		deleteShader(ctx, shader)
		return 0, err
	}
	if !ok {
		deleteShader(ctx, shader)
		ctx.Logger.Error("failed to compile shader", "stage", stage, "log", infoLog)
		return 0, &CompileError{Stage: stage, Log: infoLog}
	}

	return shader, nil
}

// LinkProgram compiles both stages and links them into a new program.
// The stage objects are flagged for deletion on every path, so the driver
// frees them together with the program; a program that fails to build is
// deleted before returning.
func LinkProgram(ctx *Context, vertexSource, fragmentSource string) (uint32, error) {
	d := ctx.Driver

	program, err := d.CreateProgram()
	if err != nil {
		return 0, err
	}
	fail := func(err error) (uint32, error) {
		if derr := d.DeleteProgram(program); derr != nil {
			ctx.Logger.Warn("delete program", "program", program, "err", derr)
		}
		return 0, err
	}

	vs, err := CompileShader(ctx, StageVertex, vertexSource)
	if err != nil {
		return fail(err)
	}
	defer deleteShader(ctx, vs)

	fs, err := CompileShader(ctx, StageFragment, fragmentSource)
	if err != nil {
		return fail(err)
	}
	defer deleteShader(ctx, fs)

	for _, shader := range []uint32{vs, fs} {
		if err := d.AttachShader(program, shader); err != nil {
			return fail(err)
		}
	}

	if err := d.LinkProgram(program); err != nil {
		return fail(err)
	}
	ok, infoLog, err := d.ProgramLinkStatus(program)
	if err != nil {
		return fail(err)
	}
	if !ok {
		ctx.Logger.Error("failed to link program", "log", infoLog)
		return fail(&LinkError{Log: infoLog})
	}

	// Validation depends on the state at draw time, so a failure here is only reported.
	if err := d.ValidateProgram(program); err != nil {
		return fail(err)
	}
	if ok, infoLog, err := d.ProgramValidateStatus(program); err != nil {
		return fail(err)
	} else if !ok {
		ctx.Logger.Warn("program validation failed", "program", program, "log", infoLog)
	}

	return program, nil
}

func deleteShader(ctx *Context, shader uint32) {
	if err := ctx.Driver.DeleteShader(shader); err != nil {
		ctx.Logger.Warn("delete shader", "shader", shader, "err", err)
	}
}

func (sp *ShaderProgram) Handle() uint32 {
	return sp.handle
}

func (sp *ShaderProgram) Path() string {
	return sp.path
}

// Bind makes this program current in its context.
func (sp *ShaderProgram) Bind() error {
	if sp.handle == 0 {
		return ErrNoProgram
	}
	return sp.ctx.UseProgram(sp.handle)
}

// Unbind leaves no program current.
func (sp *ShaderProgram) Unbind() error {
	return sp.ctx.UseProgram(0)
}

// Delete releases the program. Calling it again is a no-op.
func (sp *ShaderProgram) Delete() error {
	if sp.handle == 0 {
		return nil
	}
	handle := sp.handle
	sp.handle = 0
	sp.uniforms = make(map[string]int32)
	sp.ctx.forgetProgram(handle)
	return sp.ctx.Driver.DeleteProgram(handle)
}

// UniformLocation returns the location of name, asking the driver only the
// first time. Missing uniforms are cached as InvalidLocation and logged once.
func (sp *ShaderProgram) UniformLocation(name string) int32 {
	if location, ok := sp.uniforms[name]; ok {
		return location
	}
	if sp.handle == 0 {
		return InvalidLocation
	}

	location, err := sp.ctx.Driver.GetUniformLocation(sp.handle, name)
	switch {
	case err != nil:
		sp.ctx.Logger.Warn("uniform lookup failed", "name", name, "path", sp.path, "err", err)
		location = InvalidLocation
	case location == InvalidLocation:
		sp.ctx.Logger.Warn("uniform does not exist", "name", name, "path", sp.path)
	}

	sp.uniforms[name] = location
	return location
}

// uniform resolves name and reports whether an upload should happen.
func (sp *ShaderProgram) uniform(name string) (int32, bool, error) {
	if sp.handle == 0 {
		return InvalidLocation, false, ErrNoProgram
	}
	if sp.ctx.CurrentProgram() != sp.handle {
		return InvalidLocation, false, ErrNotBound
	}
	location := sp.UniformLocation(name)
	return location, location != InvalidLocation, nil
}

func (sp *ShaderProgram) SetUniform1i(name string, v int32) error {
	location, ok, err := sp.uniform(name)
	if !ok {
		return err
	}
	return sp.ctx.Driver.Uniform1i(location, v)
}

func (sp *ShaderProgram) SetUniform1f(name string, v float32) error {
	location, ok, err := sp.uniform(name)
	if !ok {
		return err
	}
	return sp.ctx.Driver.Uniform1f(location, v)
}

func (sp *ShaderProgram) SetUniform4f(name string, v0, v1, v2, v3 float32) error {
	location, ok, err := sp.uniform(name)
	if !ok {
		return err
	}
	return sp.ctx.Driver.Uniform4f(location, v0, v1, v2, v3)
}

func (sp *ShaderProgram) SetUniformMat4f(name string, m mgl32.Mat4) error {
	location, ok, err := sp.uniform(name)
	if !ok {
		return err
	}
	return sp.ctx.Driver.UniformMatrix4fv(location, m)
}
