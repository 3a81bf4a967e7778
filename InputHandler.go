package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/samuelyuan/go-glharness/harness"
)

const quitAction = harness.Quit

var digitKeys = []glfw.Key{
	glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5,
	glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9,
}

// InputHandler tracks held keys and maps them to harness actions.
type InputHandler struct {
	actionToKeyMap map[harness.Action][]glfw.Key
	keysPressed    [glfw.KeyLast + 1]bool

	// digit pressed since the last call to takeSelection, 0 for none
	selection int
}

func NewInputHandler() *InputHandler {
	actionToKeyMap := map[harness.Action][]glfw.Key{
		harness.MoveUp:       {glfw.KeyW},
		harness.MoveDown:     {glfw.KeyS},
		harness.MoveLeft:     {glfw.KeyA},
		harness.MoveRight:    {glfw.KeyD},
		harness.PanUp:        {glfw.KeyUp},
		harness.PanDown:      {glfw.KeyDown},
		harness.PanLeft:      {glfw.KeyLeft},
		harness.PanRight:     {glfw.KeyRight},
		harness.SwitchTarget: {glfw.KeyTab},
		harness.Back:         {glfw.KeyBackspace, glfw.Key0},
		harness.Quit:         {glfw.KeyEscape},
	}

	return &InputHandler{
		actionToKeyMap: actionToKeyMap,
	}
}

var _ harness.Input = (*InputHandler)(nil)

func (handler *InputHandler) IsActive(a harness.Action) bool {
	for _, key := range handler.actionToKeyMap[a] {
		if handler.keysPressed[key] {
			return true
		}
	}
	return false
}

// takeSelection returns the 1-based test number picked with a digit key, or 0.
func (handler *InputHandler) takeSelection() int {
	selection := handler.selection
	handler.selection = 0
	return selection
}

func (handler *InputHandler) keyCallback(window *glfw.Window, key glfw.Key, scancode int,
	action glfw.Action, mods glfw.ModifierKey) {

	if key < 0 || key > glfw.KeyLast {
		return
	}

	switch action {
	case glfw.Press:
		handler.keysPressed[key] = true
		for i, digit := range digitKeys {
			if key == digit {
				handler.selection = i + 1
			}
		}
	case glfw.Release:
		handler.keysPressed[key] = false
	}
}
