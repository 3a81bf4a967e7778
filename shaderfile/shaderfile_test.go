package shaderfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSplitsSections(t *testing.T) {
	src, err := Parse(strings.NewReader("#shader vertex\nA\n#shader fragment\nB\nC\n"))
	require.NoError(t, err)
	assert.Equal(t, "A\n", src.Vertex)
	assert.Equal(t, "B\nC\n", src.Fragment)
}

func TestParseDropsLinesBeforeFirstMarker(t *testing.T) {
	input := "// header\nstray\n#shader fragment\nvoid main() {}\n#shader vertex\n#version 330 core\n"
	src, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\n", src.Vertex)
	assert.Equal(t, "void main() {}\n", src.Fragment)
	assert.NotContains(t, src.Vertex+src.Fragment, "stray")
}

func TestParseKeepsLinesVerbatim(t *testing.T) {
	vertex := []string{"#version 330 core", "", "  layout(location = 0) in vec4 position;", "void main() { gl_Position = position; }"}
	fragment := []string{"#version 330 core", "out vec4 color;", "void main() { color = vec4(1.0); }"}

	input := "#shader vertex\n" + strings.Join(vertex, "\n") + "\n#shader fragment\n" + strings.Join(fragment, "\n")
	src, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, strings.Join(vertex, "\n")+"\n", src.Vertex)
	assert.Equal(t, strings.Join(fragment, "\n")+"\n", src.Fragment)
}

func TestParseWithoutMarkers(t *testing.T) {
	src, err := Parse(strings.NewReader("void main() {}\n"))
	require.NoError(t, err)
	assert.Empty(t, src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestParseUnknownStageKeepsSection(t *testing.T) {
	src, err := Parse(strings.NewReader("#shader vertex\nA\n#shader geometry\nB\n"))
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\nA\n#shader fragment\nB\n"), 0o644))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Sources{Vertex: "A\n", Fragment: "B\n"}, src)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.shader")
	_, err := Load(path)
	require.Error(t, err)

	var srcErr *SourceFileError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, path, srcErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
