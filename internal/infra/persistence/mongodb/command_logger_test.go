package mongodb

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"videotube/config"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func newBufferedCommandLogger(debug bool) (*commandLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newCommandLogger(logger, cfg), buf
}

func succeededEvent(elapsed time.Duration) *event.CommandSucceededEvent {
	return &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{
			CommandName:  "find",
			DatabaseName: "videotube",
			Duration:     elapsed,
		},
	}
}

func TestCommandLogger_Succeeded(t *testing.T) {
	t.Run("fast command is silent outside debug", func(t *testing.T) {
		logger, buf := newBufferedCommandLogger(false)
		logger.succeeded(context.Background(), succeededEvent(time.Millisecond))

		assert.Empty(t, buf.String())
	})

	t.Run("fast command is logged in debug", func(t *testing.T) {
		logger, buf := newBufferedCommandLogger(true)
		logger.succeeded(context.Background(), succeededEvent(time.Millisecond))

		assert.Contains(t, buf.String(), "MongoDB command")
		assert.Contains(t, buf.String(), "command=find")
	})

	t.Run("slow command warns", func(t *testing.T) {
		logger, buf := newBufferedCommandLogger(false)
		logger.succeeded(context.Background(), succeededEvent(time.Second))

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "MongoDB slow command")
	})
}

func TestCommandLogger_Failed(t *testing.T) {
	logger, buf := newBufferedCommandLogger(false)
	logger.failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{
			CommandName:  "insert",
			DatabaseName: "videotube",
			Duration:     time.Millisecond,
		},
		Failure: "E11000 duplicate key error",
	})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "E11000")
}
