package service

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"docuprint/internal/config"
)

// Server wraps the portal's HTTP listener lifecycle. Timeouts come
// from the HTTP config section; Stop bounds the drain with the
// configured shutdown timeout.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger
}

func NewServer(cfg config.HTTPConfig, handler http.Handler, logger *zap.Logger) *Server {
	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return &Server{
		httpServer:      s,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting docuprint HTTP server", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests, giving up after the configured
// shutdown timeout.
func (s *Server) Stop() error {
	s.logger.Info("Stopping docuprint HTTP server",
		zap.Duration("timeout", s.shutdownTimeout))
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
