package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying l. The CLI stores the process
// logger this way so every subcommand hands the same one to its engine.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger carried by ctx, falling back to Default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(loggerKey{}).(*log.Logger); l != nil {
			return l
		}
	}
	return Default()
}
