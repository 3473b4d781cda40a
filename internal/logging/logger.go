// Package logging is the structured logger of scificmdr: log/slog behind a
// process-wide instance, rotated file output, and timing helpers. Logging is
// off until Init is given a file path, since the terminal belongs to the
// palette.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	FilePath   string // Empty disables logging
	Level      slog.Level
	Format     LogFormat
	MaxSizeMB  int // Rotate after this many megabytes
	MaxBackups int // Rotated files to keep
}

// Logger wraps slog.Logger. Loggers derived with With or Component share
// their parent's level.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

var (
	globalLogger *Logger
	closer       io.Closer // Rotating file of the Init logger
	noopLogger   = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), level: new(slog.LevelVar)}
)

// Init replaces the global logger. The log directory is created when
// missing. A failure to close the previous log file is returned after the
// new logger is installed.
func Init(config Config) error {
	var prevErr error
	if err := Shutdown(); err != nil {
		prevErr = fmt.Errorf("close previous log file: %w", err)
	}

	if config.FilePath == "" {
		globalLogger = noopLogger
		return prevErr
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}
	closer = writer
	globalLogger = New(writer, config.Level, config.Format)
	if prevErr != nil {
		globalLogger.Warn("previous log file not closed cleanly", "error", prevErr)
	}
	return prevErr
}

// New creates a logger writing to w
func New(w io.Writer, level slog.Level, format LogFormat) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(level)
	opts := &slog.HandlerOptions{Level: lv}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler), level: lv}
}

// SetGlobal replaces the global logger. Nil restores the noop logger.
func SetGlobal(l *Logger) {
	if l == nil {
		l = noopLogger
	}
	globalLogger = l
}

// Get returns the global logger, or the noop logger before Init
func Get() *Logger {
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// Shutdown closes the log file, if any, and disables logging
func Shutdown() error {
	globalLogger = nil
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a logger that adds args to every record
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), level: l.level}
}

// Component returns a logger tagged with component=name
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// SetLevel changes the minimum level of l and every logger derived from it
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// IsEnabled reports whether l writes anywhere
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

// Debug logs a debug message using the global logger
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// Info logs an info message using the global logger
func Info(msg string, args ...any) { Get().Info(msg, args...) }

// Warn logs a warning message using the global logger
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }

// Error logs an error message using the global logger
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled reports whether the global logger writes anywhere
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a level name, ignoring case. Unknown names are info.
func ParseLevel(level string) slog.Level {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lv
}

// ParseFormat converts a format name, ignoring case. Unknown names are text.
func ParseFormat(format string) LogFormat {
	if strings.EqualFold(format, string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}
