package harness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelyuan/go-glharness/harness"
	"github.com/samuelyuan/go-glharness/render/rendertest"
)

func TestClearColorInitial(t *testing.T) {
	r, _ := newRenderer(t, rendertest.NewDriver())
	c := harness.NewClearColorTest(r).Color()

	assert.InDelta(t, 0.2, c[0], 0.01)
	assert.InDelta(t, 0.3, c[1], 0.05)
	assert.InDelta(t, 0.8, c[2], 0.01)
	assert.Equal(t, float32(1), c[3])
}

func TestClearColorUpdate(t *testing.T) {
	r, _ := newRenderer(t, rendertest.NewDriver())
	test := harness.NewClearColorTest(r)
	before := test.Color()

	test.OnUpdate(1, harness.InputState{})
	assert.Equal(t, before, test.Color())

	// brightness saturates at 1
	for i := 0; i < 10; i++ {
		test.OnUpdate(1, harness.InputState{harness.MoveUp: true})
	}
	assert.InDelta(t, 1, test.Color().Z(), 1e-6)

	for i := 0; i < 10; i++ {
		test.OnUpdate(1, harness.InputState{harness.MoveDown: true})
	}
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{test.Color()[0], test.Color()[1], test.Color()[2]})
}

func TestClearColorHueWraps(t *testing.T) {
	r, _ := newRenderer(t, rendertest.NewDriver())
	test := harness.NewClearColorTest(r)
	before := test.Color()

	// a full turn of the hue wheel lands on the same color
	test.OnUpdate(4, harness.InputState{harness.MoveRight: true})
	after := test.Color()
	for i := range before {
		assert.InDelta(t, before[i], after[i], 1e-5)
	}

	test.OnUpdate(1, harness.InputState{harness.MoveLeft: true})
	assert.NotEqual(t, before, test.Color())
}

func TestClearColorRender(t *testing.T) {
	d := rendertest.NewDriver()
	r, _ := newRenderer(t, d)
	test := harness.NewClearColorTest(r)
	assert.Equal(t, "Clear Color", test.Name())

	require.NoError(t, test.OnRender())
	c := test.Color()
	assert.Equal(t, [4]float32{c[0], c[1], c[2], c[3]}, d.ClearRGBA)
	assert.Equal(t, 1, d.Clears)
	assert.NoError(t, test.Close())
}
