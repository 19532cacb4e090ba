package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is usable before Init so packages can log during tests.
var Log = slog.Default()

// Init configures the process logger: readable text at debug level while
// developing, JSON at info level in production.
func Init(env string) {
	Log = New(os.Stdout, env)
	slog.SetDefault(Log)
}

func New(w io.Writer, env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
