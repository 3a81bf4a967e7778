package render_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelyuan/go-glharness/render"
	"github.com/samuelyuan/go-glharness/render/rendertest"
)

func TestVertexBufferLayout(t *testing.T) {
	layout := render.NewVertexBufferLayout().PushFloat(2).PushFloat(2).PushUbyte(4)

	assert.Equal(t, int32(20), layout.Stride())
	require.Len(t, layout.Elements(), 3)
	assert.Equal(t, render.VertexBufferElement{Type: render.UnsignedByte, Count: 4, Normalized: true}, layout.Elements()[2])
}

func TestVertexArrayAddBuffer(t *testing.T) {
	d := rendertest.NewDriver()
	ctx, _ := rendertest.NewContext(d)

	vb, err := render.NewVertexBuffer(ctx, []float32{
		-0.5, -0.5, 0, 0,
		0.5, -0.5, 1, 0,
		0.5, 0.5, 1, 1,
	})
	require.NoError(t, err)
	va, err := render.NewVertexArray(ctx)
	require.NoError(t, err)

	require.NoError(t, va.AddBuffer(vb, render.NewVertexBufferLayout().PushFloat(2).PushFloat(2)))
	assert.Equal(t, va.ID(), ctx.CurrentVertexArray())
	assert.Equal(t, vb.ID(), ctx.CurrentBuffer(render.ArrayBuffer))
	assert.Equal(t, []rendertest.Attrib{
		{Index: 0, Count: 2, Type: render.Float, Stride: 16, Offset: 0},
		{Index: 1, Count: 2, Type: render.Float, Stride: 16, Offset: 8},
	}, d.Attribs)

	// a second buffer continues the attribute numbering
	colors, err := render.NewVertexBuffer(ctx, []float32{1, 0, 0, 1})
	require.NoError(t, err)
	require.NoError(t, va.AddBuffer(colors, render.NewVertexBufferLayout().PushFloat(4)))
	assert.Equal(t, uint32(2), d.Attribs[2].Index)

	require.NoError(t, va.Delete())
	assert.Zero(t, ctx.CurrentVertexArray())
	assert.Empty(t, d.Arrays)
	require.NoError(t, va.Delete())
}

func TestIndexBuffer(t *testing.T) {
	d := rendertest.NewDriver()
	ctx, _ := rendertest.NewContext(d)

	ib, err := render.NewIndexBuffer(ctx, []uint32{0, 1, 2, 2, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, int32(6), ib.Count())
	assert.Equal(t, ib.ID(), ctx.CurrentBuffer(render.ElementArrayBuffer))

	require.NoError(t, ib.Unbind())
	assert.Zero(t, ctx.CurrentBuffer(render.ElementArrayBuffer))

	id := ib.ID()
	require.NoError(t, ib.Delete())
	assert.NotContains(t, d.Buffers, id)
	assert.Zero(t, ib.ID())
}

func TestBufferUploadFailureReleasesBuffer(t *testing.T) {
	d := rendertest.NewDriver()
	uploadErr := errors.New("out of memory")
	d.FailCall["BufferData"] = uploadErr
	ctx, _ := rendertest.NewContext(d)

	_, err := render.NewVertexBuffer(ctx, []float32{0, 1, 2})
	assert.ErrorIs(t, err, uploadErr)
	assert.Empty(t, d.Buffers)
	assert.Zero(t, ctx.CurrentBuffer(render.ArrayBuffer))
}

func TestFlipRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 2, color.NRGBA{B: 255, A: 255})

	flipped := render.FlipRGBA(img)
	assert.Equal(t, image.Rect(0, 0, 2, 3), flipped.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, flipped.RGBAAt(0, 2))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, flipped.RGBAAt(1, 0))
}

func TestLoadTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(3, 0, color.RGBA{G: 255, A: 255})
	path := filepath.Join(t.TempDir(), "logo.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())

	d := rendertest.NewDriver()
	ctx, _ := rendertest.NewContext(d)

	tex, err := render.LoadTexture(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, int32(4), tex.Width())
	assert.Equal(t, int32(2), tex.Height())
	assert.Equal(t, path, tex.Path())

	pixels := d.Textures[tex.ID()]
	require.Len(t, pixels, 4*2*4)
	// top-right pixel ends up in the last row
	assert.Equal(t, []uint8{0, 255, 0, 255}, pixels[(4+3)*4:(4+3)*4+4])
	assert.Zero(t, ctx.CurrentTexture(0))

	require.NoError(t, tex.Bind(1))
	assert.Equal(t, tex.ID(), ctx.CurrentTexture(1))
	id := tex.ID()
	require.NoError(t, tex.Delete())
	assert.Zero(t, ctx.CurrentTexture(1))
	assert.NotContains(t, d.Textures, id)
}

func TestLoadTextureMissingFile(t *testing.T) {
	d := rendertest.NewDriver()
	ctx, _ := rendertest.NewContext(d)

	_, err := render.LoadTexture(ctx, filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, d.Textures)
}

func TestRendererDraw(t *testing.T) {
	d := rendertest.NewDriver("u_MVP", "u_Color")
	sp, ctx, _ := buildProgram(t, d)
	r := render.NewRenderer(ctx)
	require.NoError(t, r.Init())
	assert.True(t, d.Blending)

	va, err := render.NewVertexArray(ctx)
	require.NoError(t, err)
	ib, err := render.NewIndexBuffer(ctx, []uint32{0, 1, 2, 2, 3, 0})
	require.NoError(t, err)

	require.NoError(t, r.SetClearColor(mgl32.Vec4{0.1, 0.2, 0.3, 1}))
	require.NoError(t, r.Clear())
	require.NoError(t, r.Draw(va, ib, sp))

	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, d.ClearRGBA)
	assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 1}, r.ClearColor())
	assert.Equal(t, 1, d.Clears)
	assert.Equal(t, []int32{6}, d.Draws)
	assert.Equal(t, sp.Handle(), ctx.CurrentProgram())
	assert.Equal(t, va.ID(), ctx.CurrentVertexArray())
}

func TestRendererDrawDeletedProgram(t *testing.T) {
	d := rendertest.NewDriver()
	sp, ctx, _ := buildProgram(t, d)
	r := render.NewRenderer(ctx)

	va, err := render.NewVertexArray(ctx)
	require.NoError(t, err)
	ib, err := render.NewIndexBuffer(ctx, []uint32{0, 1, 2})
	require.NoError(t, err)
	require.NoError(t, sp.Delete())

	assert.ErrorIs(t, r.Draw(va, ib, sp), render.ErrNoProgram)
	assert.Empty(t, d.Draws)
}

func TestCallErrorMessage(t *testing.T) {
	err := &render.CallError{Function: "glBindBuffer", File: "buffers.go", Line: 21, Codes: []uint32{1282}}
	assert.Equal(t, "[OpenGL Error] [1282] in glBindBuffer (buffers.go:21)", err.Error())
}
