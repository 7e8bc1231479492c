package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv(EnvDebug, "")
	assert.False(t, DebugEnabled())

	t.Setenv(EnvDebug, "1")
	assert.True(t, DebugEnabled())
}

func TestNew(t *testing.T) {
	t.Run("debug on", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, true)
		logger.Debug("dispatch", "command", "list")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=dispatch")
		assert.Contains(t, buf.String(), "command=list")
	})

	t.Run("debug off", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, false)
		logger.Debug("dispatch")
		logger.Info("info")
		assert.Empty(t, buf.String())

		logger.Warn("careful")
		assert.Contains(t, buf.String(), "level=WARN")
	})
}

func TestDiscard(t *testing.T) {
	// Must not panic.
	Discard().Error("dropped")
}
