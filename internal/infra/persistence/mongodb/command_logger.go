package mongodb

import (
	"context"
	"log/slog"
	"time"

	"videotube/config"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandLogger reports driver commands through slog: failures always,
// slow commands as warnings and, in debug mode, every command.
type commandLogger struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

func newCommandLogger(baseLogger *slog.Logger, cfg *config.Config) *commandLogger {
	return &commandLogger{
		logger:        baseLogger,
		debug:         cfg != nil && cfg.Env.Debug,
		slowThreshold: defaultSlowCommandThreshold,
	}
}

// Monitor returns the driver hook for this logger.
func (l *commandLogger) Monitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	attrs := l.buildCommandAttrs(evt.CommandName, evt.DatabaseName, evt.Duration)

	if l.shouldLogSlow(evt.Duration) {
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command", attrs...)

		return
	}

	if l.debug {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command", attrs...)
	}
}

func (l *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	attrs := l.buildCommandAttrs(evt.CommandName, evt.DatabaseName, evt.Duration)
	attrs = append(attrs, slog.String("error", evt.Failure))
	l.logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed", attrs...)
}

func (l *commandLogger) buildCommandAttrs(command, database string, elapsed time.Duration) []slog.Attr {
	return []slog.Attr{
		slog.String("command", command),
		slog.String("database", database),
		slog.Duration("elapsed", elapsed),
	}
}

func (l *commandLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold
}
