// Package server is the host bridge: it lets an out-of-process scripting
// host list and call the exported script objects over HTTP and websockets.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/djtokey/plugins/internal/logger"
	"github.com/djtokey/plugins/internal/script"
	"github.com/djtokey/plugins/internal/timeouts"
)

// Server serves a script registry
type Server struct {
	reg   *script.Registry
	log   logger.LoggerInterface
	stats *Stats
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logger.LoggerInterface) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStats shares a Stats between servers, mainly for tests.
func WithStats(st *Stats) Option {
	return func(s *Server) {
		if st != nil {
			s.stats = st
		}
	}
}

func New(reg *script.Registry, opts ...Option) *Server {
	s := &Server{
		reg:   reg,
		log:   logger.NewNoOpLogger(),
		stats: NewStats(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Stats returns the server's collectors.
func (s *Server) Stats() *Stats { return s.stats }

// Router builds the HTTP routes:
//   - Prometheus metric endpoint
//   - Websocket for request/response invocation
//   - Object and type listing and invocation under /api
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", s.stats.Handler())
	r.HandleFunc("/ws", s.websocketHandler)

	// API routes live on the root router so a wrong method answers 405
	api := func(path string, h http.HandlerFunc, method string) {
		r.Handle(path, s.stats.StatsMiddleware(h)).Methods(method)
	}
	api("/api/version", s.versionHandler, http.MethodGet)
	api("/api/objects", s.objectsHandler, http.MethodGet)
	api("/api/types", s.typesHandler, http.MethodGet)
	api("/api/objects/{object}/{method}", s.invokeObjectHandler, http.MethodPost)
	api("/api/types/{type}/{method}", s.invokeTypeHandler, http.MethodPost)

	return r
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: timeouts.ReadHeaderTimeout,
		ReadTimeout:       timeouts.ReadTimeout,
		WriteTimeout:      timeouts.WriteTimeout,
		IdleTimeout:       timeouts.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Host bridge listening", slog.String("addr", l.Addr().String()))
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Debug("Shutting down host bridge")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.ShutdownGracePeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("Host bridge shutdown incomplete", slog.Any("error", err))
		return err
	}

	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, l)
}
