package harness_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/samuelyuan/go-glharness/harness"
)

func TestCameraPan(t *testing.T) {
	c := harness.NewCamera()
	assert.Equal(t, mgl32.Ident4(), c.ViewMatrix())

	c.Update(0.5, harness.InputState{harness.PanUp: true, harness.PanLeft: true})
	assert.Equal(t, mgl32.Vec3{-150, 150, 0}, c.Position())

	// opposite directions cancel
	c.Update(1, harness.InputState{harness.PanDown: true, harness.PanUp: true})
	assert.Equal(t, mgl32.Vec3{-150, 150, 0}, c.Position())

	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{-150, 150, 0, 1})
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, p)
}
