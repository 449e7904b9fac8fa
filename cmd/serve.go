package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/djtokey/plugins/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the script objects over HTTP and websockets",
	Long: `Serve the script objects over HTTP and websockets until interrupted.

  GET  /api/objects                    exported objects and their methods
  GET  /api/types                      exported types
  POST /api/objects/{object}/{method}  {"args": [...]} -> {"result": [...]}
  POST /api/types/{type}/{method}
  GET  /ws                             {"id","object","method","args"} frames
  GET  /metrics                        Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "", "listen address (default 127.0.0.1:8765)")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := startSession(cmd)
	if err != nil {
		return err
	}
	reg := s.registry()
	defer s.close(reg)
	defer s.recoverPanic()

	// Ctrl+C and service stop both end the server gracefully
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(reg, server.WithLogger(s.log))
	if err := srv.ListenAndServe(ctx, s.settings.ListenAddr); err != nil {
		s.log.Error("Host bridge failed", slog.Any("error", err))
		return err
	}

	s.log.Info("Host bridge stopped")
	return nil
}
