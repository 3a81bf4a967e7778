package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Renderer struct {
	ctx        *Context
	clearColor mgl32.Vec4
}

func NewRenderer(ctx *Context) *Renderer {
	return &Renderer{
		ctx:        ctx,
		clearColor: mgl32.Vec4{0, 0, 0, 1},
	}
}

// Init logs the driver version and sets the blend mode used by all tests.
func (r *Renderer) Init() error {
	version, err := r.ctx.Driver.Version()
	if err != nil {
		return err
	}
	r.ctx.Logger.Info("OpenGL version", "version", version)

	if err := r.ctx.Driver.EnableBlending(); err != nil {
		return err
	}
	return r.SetClearColor(r.clearColor)
}

func (r *Renderer) Context() *Context {
	return r.ctx
}

func (r *Renderer) ClearColor() mgl32.Vec4 {
	return r.clearColor
}

func (r *Renderer) SetClearColor(c mgl32.Vec4) error {
	if err := r.ctx.Driver.ClearColor(c[0], c[1], c[2], c[3]); err != nil {
		return err
	}
	r.clearColor = c
	return nil
}

func (r *Renderer) Clear() error {
	return r.ctx.Driver.Clear()
}

// Draw binds shader, va and ib, then draws ib as triangles.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer, shader *ShaderProgram) error {
	if err := shader.Bind(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := va.Bind(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := ib.Bind(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return r.ctx.Driver.DrawElements(ib.Count(), UnsignedInt)
}
