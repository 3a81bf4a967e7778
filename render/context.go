package render

import (
	"github.com/charmbracelet/log"

	"github.com/samuelyuan/go-glharness/logging"
)

// Context is the single graphics context the harness renders into. It owns
// the driver and remembers what is currently bound, so binding order is
// visible to callers instead of hidden in global API state.
type Context struct {
	Driver Driver
	Logger *log.Logger

	program     uint32
	vertexArray uint32
	buffers     map[BufferTarget]uint32
	textures    map[uint32]uint32
}

type ContextOption func(*Context)

func WithLogger(l *log.Logger) ContextOption {
	return func(c *Context) {
		c.Logger = l
	}
}

func NewContext(driver Driver, opts ...ContextOption) *Context {
	ctx := &Context{
		Driver:   driver,
		Logger:   logging.Default(),
		buffers:  make(map[BufferTarget]uint32),
		textures: make(map[uint32]uint32),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// UseProgram makes program current. Zero unbinds.
func (c *Context) UseProgram(program uint32) error {
	if err := c.Driver.UseProgram(program); err != nil {
		return err
	}
	c.program = program
	return nil
}

// CurrentProgram returns the program made current by UseProgram, or 0.
func (c *Context) CurrentProgram() uint32 {
	return c.program
}

func (c *Context) BindVertexArray(vao uint32) error {
	if err := c.Driver.BindVertexArray(vao); err != nil {
		return err
	}
	c.vertexArray = vao
	return nil
}

func (c *Context) CurrentVertexArray() uint32 {
	return c.vertexArray
}

func (c *Context) BindBuffer(target BufferTarget, buffer uint32) error {
	if err := c.Driver.BindBuffer(target, buffer); err != nil {
		return err
	}
	c.buffers[target] = buffer
	return nil
}

func (c *Context) CurrentBuffer(target BufferTarget) uint32 {
	return c.buffers[target]
}

// BindTexture binds texture to the given texture unit.
func (c *Context) BindTexture(slot, texture uint32) error {
	if err := c.Driver.ActiveTexture(slot); err != nil {
		return err
	}
	if err := c.Driver.BindTexture(texture); err != nil {
		return err
	}
	c.textures[slot] = texture
	return nil
}

func (c *Context) CurrentTexture(slot uint32) uint32 {
	return c.textures[slot]
}

// forgetProgram clears the current program if it is the one being deleted.
func (c *Context) forgetProgram(program uint32) {
	if c.program == program {
		c.program = 0
	}
}

func (c *Context) forgetVertexArray(vao uint32) {
	if c.vertexArray == vao {
		c.vertexArray = 0
	}
}

func (c *Context) forgetBuffer(buffer uint32) {
	for target, bound := range c.buffers {
		if bound == buffer {
			delete(c.buffers, target)
		}
	}
}

func (c *Context) forgetTexture(texture uint32) {
	for slot, bound := range c.textures {
		if bound == texture {
			delete(c.textures, slot)
		}
	}
}
