package shared

import (
	"log/slog"
	"os"
	"strings"

	"github.com/codewithboateng/pyreview/internal/issue"
)

// InitLogger configures the process-wide slog logger from config values.
// Diagnostics go to stderr so report output on stdout stays parseable.
func InitLogger(format, level string) *slog.Logger {
	var h slog.Handler
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if strings.ToLower(format) == "text" {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	}
	logger := slog.New(h).With("app", "pyreview", "version", issue.Version)
	slog.SetDefault(logger)
	return logger
}
