package adapter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/nador/internal/domain"
)

// LogOff as logging.file disables logging
const LogOff = "off"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogger opens the configured log file and returns a JSON logger on it.
// The TUI owns the terminal, so logs never go to stdout/stderr. The returned
// closer releases the file.
func SetupLogger(cfg *LoggingConfig) (*slog.Logger, io.Closer, error) {
	logPath := strings.TrimSpace(cfg.File)
	if logPath == "" || strings.EqualFold(logPath, LogOff) {
		return NullLogger(), nopCloser{}, nil
	}

	logPath, err := expandHome(logPath)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.Level),
		ReplaceAttr: replaceSourceError,
	})

	return slog.New(handler).With("app", "nador"), logFile, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// replaceSourceError logs catalog load failures as a group naming the failed
// resource and whether the request or the payload was at fault.
func replaceSourceError(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	err, ok := a.Value.Any().(error)
	if !ok {
		return a
	}
	var srcErr *domain.SourceError
	if !errors.As(err, &srcErr) {
		return a
	}

	kind := "fetch"
	if errors.Is(err, domain.ErrParseFailed) {
		kind = "parse"
	}
	return slog.Group(a.Key,
		slog.String("message", err.Error()),
		slog.String("resource", string(srcErr.Resource)),
		slog.String("kind", kind),
	)
}

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NullLogger returns a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
