package logging_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelyuan/go-glharness/logging"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, log.WarnLevel)

	l.Info("hidden")
	l.Warn("uniform does not exist", "name", "u_Color")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "glharness")
	assert.Contains(t, out, "uniform does not exist")
	assert.Contains(t, out, "u_Color")
}

func TestSetLevel(t *testing.T) {
	defer logging.Default().SetLevel(log.InfoLevel)

	require.NoError(t, logging.SetLevel("debug"))
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
	assert.Same(t, logging.Default(), logging.Default())

	assert.Error(t, logging.SetLevel("loud"))
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}
