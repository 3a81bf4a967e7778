package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/samuelyuan/go-glharness/config"
)

type WindowHandler struct {
	glfwWindow   *glfw.Window
	inputHandler *InputHandler

	firstFrame    bool
	deltaTime     float64
	lastFrameTime float64
}

// NewWindowHandler opens a window with a current OpenGL 4.1 core context.
// glfw must already be initialized.
func NewWindowHandler(cfg config.Window) (*WindowHandler, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfwWindow, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	glfwWindow.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	glfwWindow.SetFramebufferSizeCallback(resizeCallback)

	inputHandler := NewInputHandler()
	glfwWindow.SetKeyCallback(inputHandler.keyCallback)

	return &WindowHandler{
		glfwWindow:   glfwWindow,
		inputHandler: inputHandler,
		firstFrame:   true,
	}, nil
}

func resizeCallback(w *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// startFrame presents the previous frame, polls events and measures the frame time.
func (windowHandler *WindowHandler) startFrame() {
	windowHandler.glfwWindow.SwapBuffers()
	glfw.PollEvents()

	if windowHandler.inputHandler.IsActive(quitAction) {
		windowHandler.glfwWindow.SetShouldClose(true)
	}

	currentFrameTime := glfw.GetTime()
	if windowHandler.firstFrame {
		windowHandler.lastFrameTime = currentFrameTime
		windowHandler.firstFrame = false
	}
	windowHandler.deltaTime = currentFrameTime - windowHandler.lastFrameTime
	windowHandler.lastFrameTime = currentFrameTime
}

func (windowHandler *WindowHandler) shouldClose() bool {
	return windowHandler.glfwWindow.ShouldClose()
}

func (windowHandler *WindowHandler) getTimeSinceLastFrame() float64 {
	return windowHandler.deltaTime
}

func (windowHandler *WindowHandler) destroy() {
	windowHandler.glfwWindow.Destroy()
}
