// Package logger provides structured logging with file and console output.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// AppName names the log directory and file
	AppName = "djtokey"

	// DefaultLogMaxSize is the default maximum size in megabytes before log rotation
	DefaultLogMaxSize = 2

	// DefaultLogMaxBackups is the default number of old log files to retain
	DefaultLogMaxBackups = 3

	// DefaultLogMaxAge is the default maximum number of days to retain old log files
	DefaultLogMaxAge = 28

	// LevelTrace is a custom log level below Debug, only logged to file
	LevelTrace = slog.LevelDebug - 4
)

// LoggerInterface defines the logging methods
type LoggerInterface interface {
	Trace(msg string, args ...any) // Only logs to file, never to console
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Close()
	GetLogPath() string
}

// LoggerOptions configures the logger
type LoggerOptions struct {
	Verbose    bool
	LogDir     string    // If empty, uses %LOCALAPPDATA%\djtokey
	Console    io.Writer // If nil, uses os.Stderr
	MaxSize    int       // Max size in megabytes before rotation
	MaxBackups int       // Max number of old log files to keep
	MaxAge     int       // Max days to keep old log files
	Compress   bool      // Whether to compress rotated logs
}

// GetLogPath returns the path where logs will be written based on options
func GetLogPath(opts LoggerOptions) string {
	logDir := opts.LogDir
	if logDir == "" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}

		logDir = filepath.Join(localAppData, AppName)
	}

	return filepath.Join(logDir, AppName+".log")
}

// PrintLogFile copies the current log file to w (stdout when w is nil).
func PrintLogFile(w io.Writer, opts LoggerOptions) error {
	if w == nil {
		w = os.Stdout
	}

	logPath := GetLogPath(opts)

	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	defer file.Close()

	if _, err := io.Copy(w, file); err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}

	return nil
}

// Logger handles dual output logging (file + console)
type Logger struct {
	file    *slog.Logger
	console *slog.Logger
	rotator *lumberjack.Logger
	logPath string
}

// NewLogger creates a new logger instance
func NewLogger(opts LoggerOptions) (*Logger, error) {
	if opts.MaxSize == 0 {
		opts.MaxSize = DefaultLogMaxSize
	}

	if opts.MaxBackups == 0 {
		opts.MaxBackups = DefaultLogMaxBackups
	}

	if opts.MaxAge == 0 {
		opts.MaxAge = DefaultLogMaxAge
	}

	if opts.Console == nil {
		opts.Console = os.Stderr
	}

	logPath := GetLogPath(opts)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}

	fileLogger := slog.New(slog.NewTextHandler(rotator, &slog.HandlerOptions{
		Level: LevelTrace,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}))

	return &Logger{
		file:    fileLogger,
		console: slog.New(NewConsoleHandler(opts.Console, opts.Verbose)),
		rotator: rotator,
		logPath: logPath,
	}, nil
}

// Close closes the log file and flushes any buffered data
func (l *Logger) Close() {
	if l.rotator == nil {
		return
	}

	if err := l.rotator.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to close log file: %v\n", err)
	}
}

// GetLogPath returns the path to the current log file
func (l *Logger) GetLogPath() string {
	return l.logPath
}

// Trace logs a trace message (file only, never to console)
func (l *Logger) Trace(msg string, args ...any) {
	l.file.Log(context.Background(), LevelTrace, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.file.Debug(msg, args...)
	l.console.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.file.Info(msg, args...)
	l.console.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.file.Warn(msg, args...)
	l.console.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.file.Error(msg, args...)
	l.console.Error(msg, args...)
}

// ConsoleHandler writes one coloured line per record, without timestamps
type ConsoleHandler struct {
	writer  io.Writer
	verbose bool
}

// NewConsoleHandler returns a handler writing to w. Debug records are only
// written when verbose is set.
func NewConsoleHandler(w io.Writer, verbose bool) *ConsoleHandler {
	return &ConsoleHandler{writer: w, verbose: verbose}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == LevelTrace {
		return false
	}

	return h.verbose || level != slog.LevelDebug
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var prefix string
	var c *color.Color

	switch r.Level {
	case slog.LevelError:
		prefix, c = "ERROR: ", color.New(color.FgRed)
	case slog.LevelWarn:
		prefix, c = "WARNING: ", color.New(color.FgYellow)
	case slog.LevelDebug:
		prefix, c = "VERBOSE: ", color.New(color.FgCyan)
	}

	line := prefix + r.Message
	if r.NumAttrs() > 0 {
		attrs := make([]string, 0, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
			return true
		})
		line += " " + strings.Join(attrs, " ")
	}

	// Console write errors are ignored
	if c != nil {
		_, _ = c.Fprintln(h.writer, line)
		return nil
	}

	_, _ = fmt.Fprintln(h.writer, line)
	return nil
}

func (h *ConsoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *ConsoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// NoOpLogger is a logger that does nothing - useful for tests
type NoOpLogger struct{}

func (n *NoOpLogger) Trace(msg string, args ...any) {}
func (n *NoOpLogger) Debug(msg string, args ...any) {}
func (n *NoOpLogger) Info(msg string, args ...any)  {}
func (n *NoOpLogger) Warn(msg string, args ...any)  {}
func (n *NoOpLogger) Error(msg string, args ...any) {}
func (n *NoOpLogger) Close()                        {}
func (n *NoOpLogger) GetLogPath() string            { return "" }

// NewNoOpLogger creates a new no-op logger for testing
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}
