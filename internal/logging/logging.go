// Package logging wires log/slog to a rotating log file. Log output never
// shares stdout or stderr with the rendered message.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CipherCosmos/chatfmt/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "chatfmt.log"

const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init configures slog per the logging config, installs the logger as the
// slog default and returns it. When the log directory cannot be created the
// returned logger discards everything and the error reports why.
func Init(cfg config.Config) (*slog.Logger, error) {
	level := parseLevel(cfg.Logging.Level)
	opts := &slog.HandlerOptions{Level: level}

	logPath := strings.TrimSpace(cfg.Logging.File)
	if logPath == "" {
		logPath = defaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		logger := slog.New(newHandler(cfg.Logging.Format, io.Discard, opts))
		slog.SetDefault(logger)
		return logger, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(newHandler(cfg.Logging.Format, writer, opts))
	slog.SetDefault(logger)
	return logger, nil
}

// defaultLogPath resolves the log file location, honoring XDG_STATE_HOME.
func defaultLogPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); xdg != "" {
		return filepath.Join(xdg, "chatfmt", defaultLogFile)
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return filepath.Join(".chatfmt", defaultLogFile)
	}
	return filepath.Join(home, ".local", "state", "chatfmt", defaultLogFile)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(out, opts)
	default:
		return slog.NewTextHandler(out, opts)
	}
}
