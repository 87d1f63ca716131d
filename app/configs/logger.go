package configs

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogger builds the process logger from env and installs it as the slog
// default.
func SetupLogger(env ENV) *slog.Logger {
	logger := NewLogger(os.Stdout, env.LogFormat, env.LogLevel)
	slog.SetDefault(logger)
	return logger
}

func NewLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
