// Package config loads the harness settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window  Window  `toml:"window"`
	Render  Render  `toml:"render"`
	Log     Log     `toml:"log"`
	Harness Harness `toml:"harness"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Render struct {
	ClearColor [4]float32 `toml:"clear_color"`
	Shader     string     `toml:"shader"`
	Texture    string     `toml:"texture"`
}

type Log struct {
	Level string `toml:"level"`
}

type Harness struct {
	// StartTest is the name of the test opened on launch; empty shows the menu.
	StartTest string `toml:"start_test"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  960,
			Height: 540,
			Title:  "OpenGL Harness",
			VSync:  true,
		},
		Render: Render{
			ClearColor: [4]float32{0, 0, 0, 1},
			Shader:     "res/shaders/basic.shader",
			Texture:    "res/textures/logo.png",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Render.Shader == "" {
		return errors.New("render.shader must be set")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
