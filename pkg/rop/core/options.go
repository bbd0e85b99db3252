package core

import (
	"context"
	"io"
	"log/slog"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
)

type LoggerOptions struct {
	Logger *slog.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// Logger returns the logger stored by WithLogger, then fallback, then a
// logger that discards everything.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	if fallback != nil {
		return fallback
	}
	return discard
}
