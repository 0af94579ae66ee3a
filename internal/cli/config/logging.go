package config

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel converts a level name or number to a slog level.
func ParseLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// NewLogger builds the CLI logger. Without a log file it writes to stderr;
// with one it writes through a rotating file. Verbose forces debug level.
// The returned closer releases the log file and must be called on exit.
func NewLogger(cfg *Config, stderr io.Writer) (*slog.Logger, io.Closer) {
	level := ParseLevel(cfg.Log.Level, slog.LevelWarn)
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	if strings.TrimSpace(cfg.Log.File) == "" {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
		return slog.New(handler), nopCloser{}
	}

	logWriter := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}
	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	return slog.New(handler), logWriter
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
