package telemetry

import (
	"io"
	"log/slog"
)

// InitSlogTo installs the default logger, writing text to w.
func InitSlogTo(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
