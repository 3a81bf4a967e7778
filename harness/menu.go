// Package harness switches between small rendering experiments ("tests")
// that share one window and renderer.
package harness

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/samuelyuan/go-glharness/render"
)

var ErrUnknownTest = errors.New("unknown test")

// Test is one rendering experiment. Close releases its GPU objects.
type Test interface {
	Name() string
	OnUpdate(dt float64, in Input)
	OnRender() error
	Close() error
}

// Factory builds a fresh Test each time it is selected.
type Factory func() (Test, error)

type Menu struct {
	renderer   *render.Renderer
	clearColor mgl32.Vec4

	names     []string
	factories map[string]Factory

	current Test
	back    edge
}

func NewMenu(renderer *render.Renderer) *Menu {
	return &Menu{
		renderer:   renderer,
		clearColor: renderer.ClearColor(),
		factories:  make(map[string]Factory),
	}
}

// Register adds a test under name. Registering a name twice replaces the factory.
func (m *Menu) Register(name string, factory Factory) {
	if _, ok := m.factories[name]; !ok {
		m.names = append(m.names, name)
	}
	m.factories[name] = factory
}

// Names lists the registered tests in registration order.
func (m *Menu) Names() []string {
	return append([]string(nil), m.names...)
}

func (m *Menu) Current() Test {
	return m.current
}

// Select closes the running test and starts name.
func (m *Menu) Select(name string) error {
	factory, ok := m.factories[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTest, name)
	}
	if err := m.Back(); err != nil {
		return err
	}

	test, err := factory()
	if err != nil {
		return fmt.Errorf("start test %q: %w", name, err)
	}
	m.current = test
	m.logger().Info("test started", "name", name)
	return nil
}

// SelectIndex starts the i-th registered test.
func (m *Menu) SelectIndex(i int) error {
	if i < 0 || i >= len(m.names) {
		return fmt.Errorf("%w: index %d", ErrUnknownTest, i)
	}
	return m.Select(m.names[i])
}

// Back closes the running test and returns to the menu.
func (m *Menu) Back() error {
	if m.current == nil {
		return nil
	}
	test := m.current
	m.current = nil
	if err := test.Close(); err != nil {
		return fmt.Errorf("close test %q: %w", test.Name(), err)
	}
	m.ShowMenu()
	return nil
}

// ShowMenu logs the selectable tests.
func (m *Menu) ShowMenu() {
	for i, name := range m.names {
		m.logger().Info("available test", "key", i+1, "name", name)
	}
}

func (m *Menu) Update(dt float64, in Input) error {
	if m.back.pressed(in, Back) {
		return m.Back()
	}
	if m.current != nil {
		m.current.OnUpdate(dt, in)
	}
	return nil
}

// Render clears the frame to the menu color and draws the running test, if any.
func (m *Menu) Render() error {
	if err := m.renderer.SetClearColor(m.clearColor); err != nil {
		return err
	}
	if err := m.renderer.Clear(); err != nil {
		return err
	}
	if m.current == nil {
		return nil
	}
	return m.current.OnRender()
}

func (m *Menu) Close() error {
	return m.Back()
}

func (m *Menu) logger() *log.Logger {
	return m.renderer.Context().Logger
}
