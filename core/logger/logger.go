package logger

import (
	"log/slog"
	"os"
	"strings"
)

var log *slog.Logger

func init() {
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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

// Info logs at info level. Args are slog key/value pairs.
func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

// Warn logs at warn level. Args are slog key/value pairs.
func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

// Debug logs at debug level. Args are slog key/value pairs.
func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

// Error logs at error level. A bare error argument is logged under the
// "error" key; anything else is passed through as slog key/value pairs.
func Error(msg string, args ...any) {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			log.Error(msg, "error", err)
			return
		}
	}
	log.Error(msg, args...)
}
