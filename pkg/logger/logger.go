package logger

import (
	"fmt"
	"log/slog"
	"os"
)

var log *slog.Logger = slog.Default()

// Init configures the global logger based on the running environment.
// Production logs JSON at info level, everything else logs text at debug level.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass either slog key-value pairs or a bare
// error/value without breaking structured output.
func normalize(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	if len(args)%2 == 0 {
		if _, ok := args[0].(string); ok {
			return args
		}
	}
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
	}
	return []any{"details", fmt.Sprint(args...)}
}
