package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/djtokey/plugins/internal/config"
	"github.com/djtokey/plugins/internal/logger"
	"github.com/djtokey/plugins/internal/plugins"
	"github.com/djtokey/plugins/internal/script"
	"github.com/djtokey/plugins/internal/version"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

// RootCmd is the root command for the djtokey CLI application.
var RootCmd = &cobra.Command{
	Use:               "djtokey",
	Short:             "djtokey - Script objects for a DJ console and Windows interop",
	Long:              "djtokey exports a Hercules DJControl MP3 LE LED driver and clipboard, process,\nenvironment and window helpers to scripts, locally or over HTTP.",
	Version:           version.GetVersion(),
	PersistentPreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	RootCmd.PersistentFlags().StringP("config", "c", "", "config file (default %APPDATA%\\djtokey\\config.json)")
	RootCmd.PersistentFlags().String("midi-device", "", "MIDI output name of the DJ console")

	RootCmd.AddCommand(listCmd, devicesCmd, callCmd, serveCmd)
}

// preRun handles --logs before any command runs
func preRun(cmd *cobra.Command, args []string) error {
	cfg := NewConfigFromFlags(cmd)
	if !cfg.ShowLogs {
		return nil
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	return handleLogsFlag(cmd.OutOrStdout(), settings.LogDir, exitFunc)
}

// handleLogsFlag prints the log file and exits
func handleLogsFlag(w io.Writer, logDir string, exit func(int)) error {
	opts := logger.LoggerOptions{LogDir: logDir}

	if err := logger.PrintLogFile(w, opts); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logger.GetLogPath(opts))
			exit(1)
			return nil
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exit(1)
		return nil
	}

	exit(0)
	return nil
}

// initializeLogger creates a logger writing to the command's stderr
func initializeLogger(cmd *cobra.Command, cfg *Config, settings config.Config) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		LogDir:   settings.LogDir,
		Console:  cmd.ErrOrStderr(),
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// session is what every subcommand starts from
type session struct {
	cfg      *Config
	settings config.Config
	log      logger.LoggerInterface
}

func startSession(cmd *cobra.Command) (*session, error) {
	cfg := NewConfigFromFlags(cmd)

	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	log, err := initializeLogger(cmd, cfg, settings)
	if err != nil {
		return nil, err
	}

	log.Debug("Starting djtokey",
		slog.String("command", cmd.Name()),
		slog.String("version", version.GetFullVersion()),
	)
	log.Debug("Settings",
		slog.String("midiDevice", settings.MIDIDevice),
		slog.String("listenAddr", settings.ListenAddr),
		slog.String("logDir", settings.LogDir),
	)

	return &session{cfg: cfg, settings: settings, log: log}, nil
}

// registry exports every plugin. Export failures are logged and the
// registry is still usable.
func (s *session) registry() *script.Registry {
	reg := script.NewRegistry()

	if err := plugins.RegisterAll(reg, s.log, plugins.Options{MIDIDevice: s.settings.MIDIDevice}); err != nil {
		s.log.Warn("Some plugins could not be exported", slog.Any("error", err))
	}

	return reg
}

// close releases the registry's objects and the log file
func (s *session) close(reg *script.Registry) {
	if reg != nil {
		if err := reg.Close(); err != nil {
			s.log.Warn("Closing script objects failed", slog.Any("error", err))
		}
	}

	s.log.Close()
}

// recoverPanic logs a panic instead of crashing without a trace
func (s *session) recoverPanic() {
	if r := recover(); r != nil {
		s.log.Error("PANIC RECOVERED",
			slog.Any("panic", r),
			slog.String("stack", string(debug.Stack())),
		)

		fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
		fmt.Fprintf(os.Stderr, "Check log file for details\n")
	}
}

// commandContext is the command's context, or Background when it has none
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
