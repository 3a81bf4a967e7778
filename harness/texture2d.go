package harness

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samuelyuan/go-glharness/render"
)

const (
	quadSize  = 50.0
	moveSpeed = 200.0
)

// quad is a textured square centered on the origin: position xy, uv.
var (
	quadVertices = []float32{
		-quadSize, -quadSize, 0, 0,
		quadSize, -quadSize, 1, 0,
		quadSize, quadSize, 1, 1,
		-quadSize, quadSize, 0, 1,
	}
	quadIndices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
)

// Texture2DTest draws the same textured quad twice at independent
// translations. Move actions drive the selected quad, SwitchTarget selects
// the other one, and pan actions move the camera.
type Texture2DTest struct {
	renderer *render.Renderer

	va      *render.VertexArray
	vb      *render.VertexBuffer
	ib      *render.IndexBuffer
	shader  *render.ShaderProgram
	texture *render.Texture

	camera       *Camera
	proj         mgl32.Mat4
	translations [2]mgl32.Vec3
	target       int
	switchTarget edge
}

// NewTexture2DTest builds the GPU objects; on failure everything created so far is released.
func NewTexture2DTest(renderer *render.Renderer, shaderPath, texturePath string, width, height float32) (t *Texture2DTest, err error) {
	ctx := renderer.Context()
	t = &Texture2DTest{
		renderer: renderer,
		camera:   NewCamera(),
		proj:     mgl32.Ortho(0, width, 0, height, -1, 1),
		translations: [2]mgl32.Vec3{
			{width / 4, height / 2, 0},
			{width * 3 / 4, height / 2, 0},
		},
	}
	defer func() {
		if err != nil {
			t.Close()
			t = nil
		}
	}()

	if t.va, err = render.NewVertexArray(ctx); err != nil {
		return t, err
	}
	if t.vb, err = render.NewVertexBuffer(ctx, quadVertices); err != nil {
		return t, err
	}
	layout := render.NewVertexBufferLayout().PushFloat(2).PushFloat(2)
	if err = t.va.AddBuffer(t.vb, layout); err != nil {
		return t, err
	}
	if t.ib, err = render.NewIndexBuffer(ctx, quadIndices); err != nil {
		return t, err
	}

	if t.shader, err = render.NewShaderProgram(ctx, shaderPath); err != nil {
		return t, err
	}
	if err = t.shader.Bind(); err != nil {
		return t, err
	}
	if t.texture, err = render.LoadTexture(ctx, texturePath); err != nil {
		return t, err
	}
	if err = t.shader.SetUniform1i("u_Texture", 0); err != nil {
		return t, err
	}

	for _, unbind := range []func() error{t.va.Unbind, t.vb.Unbind, t.ib.Unbind, t.shader.Unbind} {
		if err = unbind(); err != nil {
			return t, err
		}
	}
	return t, nil
}

func (t *Texture2DTest) Name() string {
	return "Texture 2D"
}

// Translation returns the position of quad i (0 or 1).
func (t *Texture2DTest) Translation(i int) mgl32.Vec3 {
	return t.translations[i]
}

// Target is the index of the quad moved by the move actions.
func (t *Texture2DTest) Target() int {
	return t.target
}

func (t *Texture2DTest) Camera() *Camera {
	return t.camera
}

func (t *Texture2DTest) OnUpdate(dt float64, in Input) {
	if t.switchTarget.pressed(in, SwitchTarget) {
		t.target = 1 - t.target
	}

	speed := float32(moveSpeed * dt)
	delta := mgl32.Vec3{}
	if in.IsActive(MoveUp) {
		delta[1] += speed
	}
	if in.IsActive(MoveDown) {
		delta[1] -= speed
	}
	if in.IsActive(MoveLeft) {
		delta[0] -= speed
	}
	if in.IsActive(MoveRight) {
		delta[0] += speed
	}
	t.translations[t.target] = t.translations[t.target].Add(delta)

	t.camera.Update(dt, in)
}

// MVP returns the matrix uploaded for quad i.
func (t *Texture2DTest) MVP(i int) mgl32.Mat4 {
	model := mgl32.Translate3D(t.translations[i].Elem())
	return t.proj.Mul4(t.camera.ViewMatrix()).Mul4(model)
}

func (t *Texture2DTest) OnRender() error {
	if err := t.texture.Bind(0); err != nil {
		return err
	}
	for i := range t.translations {
		if err := t.shader.Bind(); err != nil {
			return err
		}
		if err := t.shader.SetUniformMat4f("u_MVP", t.MVP(i)); err != nil {
			return err
		}
		if err := t.renderer.Draw(t.va, t.ib, t.shader); err != nil {
			return err
		}
	}
	return nil
}

func (t *Texture2DTest) Close() error {
	var errs []error
	if t.texture != nil {
		errs = append(errs, t.texture.Delete())
	}
	if t.shader != nil {
		errs = append(errs, t.shader.Delete())
	}
	if t.ib != nil {
		errs = append(errs, t.ib.Delete())
	}
	if t.vb != nil {
		errs = append(errs, t.vb.Delete())
	}
	if t.va != nil {
		errs = append(errs, t.va.Delete())
	}
	return errors.Join(errs...)
}
