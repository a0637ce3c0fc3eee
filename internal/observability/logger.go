package observability

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/neo-impact-etl/internal/config"
)

// NewLogger builds the process-wide slog.Logger from config: LOG_FORMAT
// selects the handler (json or text) and LOG_LEVEL the threshold.
// Unrecognized values fall back to JSON at info level.
func NewLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
