package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesLogfmtToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, closeFn, err := New("info", path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("program stopped", "exit_code", 0)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `msg="program stopped"`)
	assert.Contains(t, out, "exit_code=0")
	assert.Contains(t, out, "level=info")
	assert.NotContains(t, out, "hidden")
}

func TestNew_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

	logger, closeFn, err := New("debug", path)
	require.NoError(t, err)
	logger.Debug("next")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous\n")
	assert.Contains(t, string(data), "msg=next")
}

func TestNew_DiscardWithoutPath(t *testing.T) {
	logger, closeFn, err := New("warn", "")
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Error("goes nowhere")
	assert.NoError(t, closeFn())
}

func TestNew_Errors(t *testing.T) {
	_, _, err := New("loud", "")
	assert.Error(t, err)

	_, _, err = New("info", filepath.Join(t.TempDir(), "missing", "app.log"))
	assert.Error(t, err)
}
