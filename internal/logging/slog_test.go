package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/groupassign/types"
)

func TestSlogLogger_ImplementsInterface(_ *testing.T) {
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := NewSlog(slog.New(handler))

	require.NotNil(t, log)
	require.NotNil(t, log.logger)
}

func TestNewSlogDefault(t *testing.T) {
	log := NewSlogDefault()

	require.NotNil(t, log)
	require.NotNil(t, log.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	newLogger := func() (*SlogLogger, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})

		return NewSlog(slog.New(handler)), buf
	}

	t.Run("debug", func(t *testing.T) {
		log, buf := newLogger()
		log.Debug("debug message", "key", "value")

		assert.Contains(t, buf.String(), "debug message")
		assert.Contains(t, buf.String(), "key=value")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("info", func(t *testing.T) {
		log, buf := newLogger()
		log.Info("info message", "count", 3)

		assert.Contains(t, buf.String(), "info message")
		assert.Contains(t, buf.String(), "count=3")
		assert.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("warn", func(t *testing.T) {
		log, buf := newLogger()
		log.Warn("warn message")

		assert.Contains(t, buf.String(), "warn message")
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("error", func(t *testing.T) {
		log, buf := newLogger()
		log.Error("error message", "err", "boom")

		assert.Contains(t, buf.String(), "error message")
		assert.Contains(t, buf.String(), "err=boom")
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
