package logger

import (
	"log/slog"
	"os"
)

var base = slog.Default()

// Init wires the package logger for the given environment. Production
// logs JSON at info level, everything else logs text with debug on.
func Init(env string) {
	var handler slog.Handler
	switch env {
	case "production":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	base = slog.New(handler)
	slog.SetDefault(base)
}

func Debug(msg string, args ...any) {
	base.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	base.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	base.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	base.Error(msg, normalize(args)...)
}

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	base.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error as the only argument,
// e.g. Error("failed to load questions", err).
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
	}
	return args
}
