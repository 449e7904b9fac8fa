package logger_test

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djtokey/plugins/internal/logger"
)

func TestNewLogger_DefaultOptions(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)
	defer log.Close()

	logPath := log.GetLogPath()
	assert.Equal(t, filepath.Join(tmpDir, "djtokey", "djtokey.log"), logPath)
	assert.DirExists(t, filepath.Join(tmpDir, "djtokey"))
}

func TestNewLogger_CustomLogDir(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir})
	require.NoError(t, err)
	defer log.Close()

	assert.Equal(t, filepath.Join(tmpDir, "djtokey.log"), log.GetLogPath())
}

func TestNewLogger_FallbackToUserProfile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("USERPROFILE", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)
	defer log.Close()

	expected := filepath.Join(tmpDir, "AppData", "Local", "djtokey", "djtokey.log")
	assert.Equal(t, expected, log.GetLogPath())
}

func TestLogger_WritesFileAndConsole(t *testing.T) {
	tmpDir := t.TempDir()
	var console bytes.Buffer

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  tmpDir,
		Console: &console,
	})
	require.NoError(t, err)

	log.Trace("trace message")
	log.Debug("debug message")
	log.Info("info message", slog.Int("count", 42))
	log.Warn("warn message", slog.String("object", "DjControl"))
	log.Error("error message", slog.Any("error", assert.AnError))
	log.Close()

	out := console.String()
	assert.NotContains(t, out, "trace message", "Trace must never reach the console")
	assert.NotContains(t, out, "debug message", "Debug is hidden without verbose")
	assert.Contains(t, out, "info message count=42")
	assert.Contains(t, out, "WARNING: warn message object=DjControl")
	assert.Contains(t, out, "ERROR: error message")

	data, err := os.ReadFile(log.GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "debug message")
	assert.Contains(t, string(data), "info message")
}

func TestLogger_VerboseShowsDebug(t *testing.T) {
	var console bytes.Buffer

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  t.TempDir(),
		Console: &console,
		Verbose: true,
	})
	require.NoError(t, err)
	defer log.Close()

	log.Debug("opening device", slog.Int("id", 2))
	assert.Contains(t, console.String(), "VERBOSE: opening device id=2")
}

func TestPrintLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	opts := logger.LoggerOptions{LogDir: tmpDir}

	require.NoError(t, os.WriteFile(logger.GetLogPath(opts), []byte("line 1\nline 2\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, logger.PrintLogFile(&out, opts))
	assert.Equal(t, "line 1\nline 2\n", out.String())
}

func TestPrintLogFile_Missing(t *testing.T) {
	err := logger.PrintLogFile(&bytes.Buffer{}, logger.LoggerOptions{LogDir: t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNoOpLogger(t *testing.T) {
	log := logger.NewNoOpLogger()

	assert.NotPanics(t, func() {
		log.Trace("test")
		log.Debug("test")
		log.Info("test")
		log.Warn("test")
		log.Error("test")
		log.Close()
	})
	assert.Empty(t, log.GetLogPath())
}
