package harness

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	PanSpeed = 300.0
)

// Camera is a 2D camera panned with the arrow actions, in pixels.
type Camera struct {
	position mgl32.Vec3
}

func NewCamera() *Camera {
	return &Camera{}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(-c.position.X(), -c.position.Y(), -c.position.Z())
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) Update(dt float64, in Input) {
	speed := float32(PanSpeed * dt)
	dir := mgl32.Vec3{}
	if in.IsActive(PanUp) {
		dir[1] += speed
	}
	if in.IsActive(PanDown) {
		dir[1] -= speed
	}
	if in.IsActive(PanLeft) {
		dir[0] -= speed
	}
	if in.IsActive(PanRight) {
		dir[0] += speed
	}
	c.position = c.position.Add(dir)
}
