package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
)

// HTTPService runs the API server as a Runner service.
type HTTPService struct {
	server *http.Server
}

// NewHTTPService wraps a handler in a lifecycle-managed HTTP server.
func NewHTTPService(host, port string, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:     net.JoinHostPort(host, port),
			Handler:  handler,
			ErrorLog: logger.StdLogger(),
		},
	}
}

// Name implements Service.
func (s *HTTPService) Name() string { return "http" }

// Start listens and serves until Stop.
func (s *HTTPService) Start() error {
	logger.Infow("http_listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains connections within the context deadline.
func (s *HTTPService) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
