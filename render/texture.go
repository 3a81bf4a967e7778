package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Texture is a 2D RGBA texture loaded from an image file.
type Texture struct {
	ctx    *Context
	id     uint32
	path   string
	width  int32
	height int32
	slot   uint32
}

// LoadTexture decodes the image at path and uploads it. Rows are flipped so
// the first row in memory is the bottom of the image, as texture coordinates expect.
func LoadTexture(ctx *Context, path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	tex, err := NewTexture(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("upload texture %q: %w", path, err)
	}
	tex.path = path
	ctx.Logger.Debug("texture loaded", "path", path, "width", tex.width, "height", tex.height)
	return tex, nil
}

// NewTexture uploads img with linear filtering and clamp-to-edge wrapping.
func NewTexture(ctx *Context, img image.Image) (*Texture, error) {
	pixels := FlipRGBA(img)
	width, height := int32(pixels.Rect.Dx()), int32(pixels.Rect.Dy())

	id, err := ctx.Driver.GenTexture()
	if err != nil {
		return nil, err
	}
	tex := &Texture{ctx: ctx, id: id, width: width, height: height}

	if err := tex.Bind(0); err != nil {
		tex.Delete()
		return nil, err
	}
	if err := ctx.Driver.TexLinearClamp(); err != nil {
		tex.Delete()
		return nil, err
	}
	if err := ctx.Driver.TexImage2D(width, height, pixels.Pix); err != nil {
		tex.Delete()
		return nil, err
	}
	if err := tex.Unbind(); err != nil {
		tex.Delete()
		return nil, err
	}
	return tex, nil
}

// FlipRGBA converts img to tightly packed RGBA with the rows in bottom-up order.
func FlipRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	rowSize := rgba.Stride
	row := make([]uint8, rowSize)
	for top, bottom := 0, bounds.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := rgba.Pix[top*rowSize : (top+1)*rowSize]
		b := rgba.Pix[bottom*rowSize : (bottom+1)*rowSize]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
	return rgba
}

func (t *Texture) ID() uint32 {
	return t.id
}

func (t *Texture) Width() int32 {
	return t.width
}

func (t *Texture) Height() int32 {
	return t.height
}

func (t *Texture) Path() string {
	return t.path
}

// Bind binds the texture to texture unit slot.
func (t *Texture) Bind(slot uint32) error {
	if err := t.ctx.BindTexture(slot, t.id); err != nil {
		return err
	}
	t.slot = slot
	return nil
}

func (t *Texture) Unbind() error {
	return t.ctx.BindTexture(t.slot, 0)
}

func (t *Texture) Delete() error {
	if t.id == 0 {
		return nil
	}
	id := t.id
	t.id = 0
	t.ctx.forgetTexture(id)
	return t.ctx.Driver.DeleteTexture(id)
}
