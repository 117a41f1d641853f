package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/honeycarbs/staffing-intel/internal/api"
	"github.com/honeycarbs/staffing-intel/internal/config"
	"github.com/honeycarbs/staffing-intel/internal/mcp"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

// Server serves the REST API and the MCP stream on one HTTP listener
type Server struct {
	logger *logging.Logger
	config config.Config

	srv     *http.Server
	started atomic.Bool
}

// NewServer mounts every route and wraps the mux in the middleware chain
func NewServer(log *logging.Logger, cfg config.Config, res *mcp.Resources) *Server {
	mux := http.NewServeMux()

	api.NewHandler(res.IntelService, log).Register(mux)

	mcpServer := mcp.NewToolRegistry(log).NewServer(*res)
	mux.Handle("/mcp/stream", mcp.NewStreamHandler(mcpServer))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := api.Chain(mux,
		api.RequestID,
		api.AccessLog(log),
		api.Recover(log),
		api.RateLimit(api.NewClientLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)),
	)

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		config: cfg,
		srv:    httpSrv,
	}
}

// Handler exposes the root handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
