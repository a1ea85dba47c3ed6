package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, 4) // warn

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "key=value")
}

func TestNewFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "taskdesk.log")

	l, err := NewFile(path, 0)
	require.NoError(t, err)
	l.Info("first")
	require.NoError(t, l.Close())

	l, err = NewFile(path, 0)
	require.NoError(t, err)
	l.Info("second")
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "msg=first")
	assert.Contains(t, string(raw), "msg=second")
}

func TestNoopClose(t *testing.T) {
	assert.NoError(t, Noop().Close())
}
