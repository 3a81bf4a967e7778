package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/samuelyuan/go-glharness/config"
	"github.com/samuelyuan/go-glharness/harness"
	"github.com/samuelyuan/go-glharness/logging"
	"github.com/samuelyuan/go-glharness/render"
	"github.com/samuelyuan/go-glharness/render/gldriver"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "harness.toml", "path to the TOML settings file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logging.Default().Error("harness stopped", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	logger := logging.Default()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	windowHandler, err := NewWindowHandler(cfg.Window)
	if err != nil {
		return err
	}
	defer windowHandler.destroy()

	driver, err := gldriver.New()
	if err != nil {
		return fmt.Errorf("could not initialize OpenGL: %w", err)
	}
	ctx := render.NewContext(driver, render.WithLogger(logger))
	renderer := render.NewRenderer(ctx)
	if err := renderer.Init(); err != nil {
		return err
	}
	if err := renderer.SetClearColor(mgl32.Vec4(cfg.Render.ClearColor)); err != nil {
		return err
	}

	menu := harness.NewMenu(renderer)
	menu.Register("Clear Color", func() (harness.Test, error) {
		return harness.NewClearColorTest(renderer), nil
	})
	menu.Register("Texture 2D", func() (harness.Test, error) {
		test, err := harness.NewTexture2DTest(renderer, cfg.Render.Shader, cfg.Render.Texture,
			float32(cfg.Window.Width), float32(cfg.Window.Height))
		if err != nil {
			return nil, err
		}
		return test, nil
	})
	defer func() {
		if err := menu.Close(); err != nil {
			logger.Error("close test", "err", err)
		}
	}()

	if cfg.Harness.StartTest != "" {
		if err := menu.Select(cfg.Harness.StartTest); err != nil {
			logger.Error("could not start test", "err", err)
			menu.ShowMenu()
		}
	} else {
		menu.ShowMenu()
	}

	input := windowHandler.inputHandler
	for !windowHandler.shouldClose() {
		windowHandler.startFrame()

		if n := input.takeSelection(); n > 0 {
			// a test that fails to build leaves the menu usable
			if err := menu.SelectIndex(n - 1); err != nil {
				logger.Error("could not start test", "err", err)
			}
		}
		if err := menu.Update(windowHandler.getTimeSinceLastFrame(), input); err != nil {
			logger.Error("update", "err", err)
		}
		if err := menu.Render(); err != nil {
			logger.Error("render", "err", err)
			if err := menu.Back(); err != nil {
				logger.Error("close test", "err", err)
			}
		}
	}
	return nil
}
