package harness

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samuelyuan/go-glharness/render"
)

const (
	// hue degrees per second while a horizontal move action is held
	hueSpeed   = 90.0
	valueSpeed = 0.5
)

// ClearColorTest fills the window with one color. Left/right rotate the hue,
// up/down change the brightness.
type ClearColorTest struct {
	renderer *render.Renderer

	hue   float64
	value float64
}

func NewClearColorTest(renderer *render.Renderer) *ClearColorTest {
	// starts at roughly rgb(0.2, 0.3, 0.8)
	return &ClearColorTest{
		renderer: renderer,
		hue:      228.75,
		value:    0.8,
	}
}

func (t *ClearColorTest) Name() string {
	return "Clear Color"
}

func (t *ClearColorTest) OnUpdate(dt float64, in Input) {
	if in.IsActive(MoveLeft) {
		t.hue -= hueSpeed * dt
	}
	if in.IsActive(MoveRight) {
		t.hue += hueSpeed * dt
	}
	t.hue = math.Mod(t.hue+360, 360)

	if in.IsActive(MoveUp) {
		t.value += valueSpeed * dt
	}
	if in.IsActive(MoveDown) {
		t.value -= valueSpeed * dt
	}
	t.value = math.Min(math.Max(t.value, 0), 1)
}

// Color is the current clear color.
func (t *ClearColorTest) Color() mgl32.Vec4 {
	r, g, b := hsvToRGB(t.hue, 0.75, t.value)
	return mgl32.Vec4{float32(r), float32(g), float32(b), 1}
}

func (t *ClearColorTest) OnRender() error {
	if err := t.renderer.SetClearColor(t.Color()); err != nil {
		return err
	}
	return t.renderer.Clear()
}

func (t *ClearColorTest) Close() error {
	return nil
}

// hsvToRGB expects hue in degrees and s, v in [0, 1].
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
