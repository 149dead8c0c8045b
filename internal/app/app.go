// Package app runs the process's long-lived services and coordinates
// their shutdown on SIGINT/SIGTERM.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
)

const shutdownTimeout = 15 * time.Second

// Service is a long-lived component with a lifecycle.
type Service interface {
	Name() string
	Start() error
	Stop(ctx context.Context) error
}

// Runner starts services and stops them in reverse order on signal.
type Runner struct {
	services []Service
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Add registers a service. Start order is registration order.
func (r *Runner) Add(s Service) {
	r.services = append(r.services, s)
}

// Run starts every service and blocks until a termination signal, then
// stops them with a shared deadline. The first start failure aborts the
// whole process.
func (r *Runner) Run() error {
	errCh := make(chan error, len(r.services))
	for _, s := range r.services {
		s := s
		logger.Infow("service_starting", "service", s.Name())
		go func() {
			if err := s.Start(); err != nil {
				logger.Errorw("service_failed", "service", s.Name(), "error", err)
				errCh <- err
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Infow("shutdown_signal", "signal", sig.String())
	case runErr = <-errCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i := len(r.services) - 1; i >= 0; i-- {
		s := r.services[i]
		if err := s.Stop(ctx); err != nil {
			logger.Warnw("service_stop_failed", "service", s.Name(), "error", err)
		} else {
			logger.Infow("service_stopped", "service", s.Name())
		}
	}
	return runErr
}
