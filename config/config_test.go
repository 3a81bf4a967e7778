package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harness.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1280
title = "Shader Lab"

[render]
clear_color = [0.1, 0.2, 0.3, 1.0]
shader = "shaders/texture.shader"

[log]
level = "debug"

[harness]
start_test = "Texture 2D"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 540, cfg.Window.Height)
	assert.Equal(t, "Shader Lab", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1.0}, cfg.Render.ClearColor)
	assert.Equal(t, "shaders/texture.shader", cfg.Render.Shader)
	assert.Equal(t, "res/textures/logo.png", cfg.Render.Texture)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Texture 2D", cfg.Harness.StartTest)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero width", "[window]\nwidth = 0\n"},
		{"negative height", "[window]\nheight = -5\n"},
		{"empty shader", "[render]\nshader = \"\"\n"},
		{"unknown level", "[log]\nlevel = \"loud\"\n"},
		{"bad syntax", "[window\nwidth = 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
