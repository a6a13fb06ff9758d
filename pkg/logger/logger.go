package logger

import (
	"io"
	"log/slog"
)

var Log *slog.Logger = slog.Default()

// InitWithWriter installs a JSON logger writing to w.
func InitWithWriter(w io.Writer, level slog.Level) {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}

// Level picks the log level for a gin mode.
func Level(ginMode string) slog.Level {
	if ginMode == "release" {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
