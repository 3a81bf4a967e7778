// Package rendertest provides an in-memory render.Driver for tests.
package rendertest

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/samuelyuan/go-glharness/logging"
	"github.com/samuelyuan/go-glharness/render"
)

// errInvalidOperation mirrors GL_INVALID_OPERATION.
const errInvalidOperation = 0x0502

type Shader struct {
	Stage   render.Stage
	Source  string
	Deleted bool
}

type Program struct {
	Attached  []uint32
	Linked    bool
	Deleted   bool
	Locations map[string]int32
	Values    map[int32][]float32
}

type Attrib struct {
	Index      uint32
	Count      int32
	Type       render.DataType
	Normalized bool
	Stride     int32
	Offset     int
}

// Driver keeps every object in maps. Linked programs expose the names in
// Uniforms at locations 0..n-1. CompileFail, LinkFail and FailCall inject
// driver rejections.
type Driver struct {
	next uint32

	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32]int
	Arrays   map[uint32]bool
	Textures map[uint32][]uint8

	Uniforms    []string
	CompileFail map[render.Stage]string
	LinkFail    string
	ValidateLog string
	FailCall    map[string]error

	Current   uint32
	Texture   uint32
	Queries   map[string]int
	Attribs   []Attrib
	Draws     []int32
	Clears    int
	ClearRGBA [4]float32
	Blending  bool
}

var _ render.Driver = (*Driver)(nil)

func NewDriver(uniforms ...string) *Driver {
	return &Driver{
		Shaders:     make(map[uint32]*Shader),
		Programs:    make(map[uint32]*Program),
		Buffers:     make(map[uint32]int),
		Arrays:      make(map[uint32]bool),
		Textures:    make(map[uint32][]uint8),
		Uniforms:    uniforms,
		CompileFail: make(map[render.Stage]string),
		FailCall:    make(map[string]error),
		Queries:     make(map[string]int),
	}
}

// NewContext wraps d in a render.Context whose log output is captured in the returned buffer.
func NewContext(d *Driver) (*render.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return render.NewContext(d, render.WithLogger(logging.New(&buf, log.DebugLevel))), &buf
}

func (d *Driver) LiveShaders() int {
	n := 0
	for _, s := range d.Shaders {
		if !s.Deleted {
			n++
		}
	}
	return n
}

func (d *Driver) LivePrograms() int {
	n := 0
	for _, p := range d.Programs {
		if !p.Deleted {
			n++
		}
	}
	return n
}

func (d *Driver) handle() uint32 {
	d.next++
	return d.next
}

func (d *Driver) fail(name string) error {
	return d.FailCall[name]
}

func invalidOperation(function string) error {
	return &render.CallError{Function: function, File: "driver.go", Codes: []uint32{errInvalidOperation}}
}

func (d *Driver) Version() (string, error) {
	return "4.1 rendertest", d.fail("Version")
}

func (d *Driver) CreateShader(stage render.Stage) (uint32, error) {
	if err := d.fail("CreateShader"); err != nil {
		return 0, err
	}
	id := d.handle()
	d.Shaders[id] = &Shader{Stage: stage}
	return id, nil
}

func (d *Driver) ShaderSource(shader uint32, source string) error {
	d.Shaders[shader].Source = source
	return d.fail("ShaderSource")
}

func (d *Driver) CompileShader(shader uint32) error {
	return d.fail("CompileShader")
}

func (d *Driver) ShaderCompileStatus(shader uint32) (bool, string, error) {
	s := d.Shaders[shader]
	if msg, ok := d.CompileFail[s.Stage]; ok {
		return false, msg, nil
	}
	if s.Source == "" {
		return false, "ERROR: 0:1: '' : syntax error: unexpected end of file", nil
	}
	return true, "", nil
}

func (d *Driver) DeleteShader(shader uint32) error {
	s, ok := d.Shaders[shader]
	if !ok {
		return fmt.Errorf("unknown shader %d", shader)
	}
	s.Deleted = true
	return nil
}

func (d *Driver) CreateProgram() (uint32, error) {
	if err := d.fail("CreateProgram"); err != nil {
		return 0, err
	}
	id := d.handle()
	d.Programs[id] = &Program{
		Locations: make(map[string]int32),
		Values:    make(map[int32][]float32),
	}
	return id, nil
}

func (d *Driver) AttachShader(program, shader uint32) error {
	p := d.Programs[program]
	p.Attached = append(p.Attached, shader)
	return nil
}

func (d *Driver) LinkProgram(program uint32) error {
	if d.LinkFail != "" {
		return nil
	}
	p := d.Programs[program]
	p.Linked = true
	for i, name := range d.Uniforms {
		p.Locations[name] = int32(i)
	}
	return nil
}

func (d *Driver) ProgramLinkStatus(program uint32) (bool, string, error) {
	if d.LinkFail != "" {
		return false, d.LinkFail, nil
	}
	return d.Programs[program].Linked, "", nil
}

func (d *Driver) ValidateProgram(program uint32) error {
	return nil
}

func (d *Driver) ProgramValidateStatus(program uint32) (bool, string, error) {
	return d.ValidateLog == "", d.ValidateLog, nil
}

func (d *Driver) UseProgram(program uint32) error {
	if program != 0 {
		if p, ok := d.Programs[program]; !ok || p.Deleted || !p.Linked {
			return invalidOperation("glUseProgram")
		}
	}
	d.Current = program
	return nil
}

func (d *Driver) DeleteProgram(program uint32) error {
	p, ok := d.Programs[program]
	if !ok {
		return fmt.Errorf("unknown program %d", program)
	}
	p.Deleted = true
	if d.Current == program {
		d.Current = 0
	}
	return nil
}

func (d *Driver) GetUniformLocation(program uint32, name string) (int32, error) {
	d.Queries[name]++
	if location, ok := d.Programs[program].Locations[name]; ok {
		return location, nil
	}
	return render.InvalidLocation, nil
}

func (d *Driver) set(location int32, values ...float32) error {
	if d.Current == 0 {
		return invalidOperation("glUniform")
	}
	d.Programs[d.Current].Values[location] = values
	return nil
}

func (d *Driver) Uniform1i(location int32, v int32) error {
	return d.set(location, float32(v))
}

func (d *Driver) Uniform1f(location int32, v float32) error {
	return d.set(location, v)
}

func (d *Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) error {
	return d.set(location, v0, v1, v2, v3)
}

func (d *Driver) UniformMatrix4fv(location int32, m mgl32.Mat4) error {
	return d.set(location, m[:]...)
}

func (d *Driver) GetUniformfv(program uint32, location int32, out []float32) error {
	copy(out, d.Programs[program].Values[location])
	return nil
}

func (d *Driver) GetUniformiv(program uint32, location int32, out []int32) error {
	for i, v := range d.Programs[program].Values[location] {
		if i < len(out) {
			out[i] = int32(v)
		}
	}
	return nil
}

func (d *Driver) GenBuffer() (uint32, error) {
	if err := d.fail("GenBuffer"); err != nil {
		return 0, err
	}
	id := d.handle()
	d.Buffers[id] = 0
	return id, nil
}

func (d *Driver) BindBuffer(target render.BufferTarget, buffer uint32) error {
	return d.fail("BindBuffer")
}

func (d *Driver) BufferData(target render.BufferTarget, size int, data interface{}) error {
	return d.fail("BufferData")
}

func (d *Driver) DeleteBuffer(buffer uint32) error {
	delete(d.Buffers, buffer)
	return nil
}

func (d *Driver) GenVertexArray() (uint32, error) {
	id := d.handle()
	d.Arrays[id] = true
	return id, nil
}

func (d *Driver) BindVertexArray(vao uint32) error {
	return nil
}

func (d *Driver) EnableVertexAttribArray(index uint32) error {
	return nil
}

func (d *Driver) VertexAttribPointer(index uint32, count int32, typ render.DataType, normalized bool, stride int32, offset int) error {
	d.Attribs = append(d.Attribs, Attrib{index, count, typ, normalized, stride, offset})
	return nil
}

func (d *Driver) DeleteVertexArray(vao uint32) error {
	delete(d.Arrays, vao)
	return nil
}

func (d *Driver) GenTexture() (uint32, error) {
	id := d.handle()
	d.Textures[id] = nil
	return id, nil
}

func (d *Driver) ActiveTexture(slot uint32) error {
	return nil
}

func (d *Driver) BindTexture(texture uint32) error {
	d.Texture = texture
	return nil
}

func (d *Driver) TexImage2D(width, height int32, pixels []uint8) error {
	if err := d.fail("TexImage2D"); err != nil {
		return err
	}
	d.Textures[d.Texture] = append([]uint8(nil), pixels...)
	return nil
}

func (d *Driver) TexLinearClamp() error {
	return nil
}

func (d *Driver) DeleteTexture(texture uint32) error {
	delete(d.Textures, texture)
	return nil
}

func (d *Driver) ClearColor(r, g, b, a float32) error {
	d.ClearRGBA = [4]float32{r, g, b, a}
	return nil
}

func (d *Driver) Clear() error {
	d.Clears++
	return nil
}

func (d *Driver) EnableBlending() error {
	d.Blending = true
	return nil
}

func (d *Driver) DrawElements(count int32, typ render.DataType) error {
	if d.Current == 0 {
		return invalidOperation("glDrawElements")
	}
	d.Draws = append(d.Draws, count)
	return nil
}
