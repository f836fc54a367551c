package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
)

// GracefulServer runs an Echo instance and drains in-flight requests when a
// termination signal arrives.
type GracefulServer struct {
	e            *echo.Echo
	log          *logger.ZapLogger
	addr         string
	drainTimeout time.Duration
}

// NewGracefulServer wraps e to listen on the given port.
func NewGracefulServer(e *echo.Echo, log *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		e:            e,
		log:          log,
		addr:         fmt.Sprintf(":%d", port),
		drainTimeout: 20 * time.Second,
	}
}

// Start serves until SIGINT/SIGTERM or a listener failure, then drains.
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", logger.String("addr", s.addr))
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		s.log.Info("Shutdown signal received", logger.String("signal", sig.String()))
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for in-flight requests up to
// the drain timeout.
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	if err := s.e.Shutdown(ctx); err != nil {
		s.log.Error("Forced shutdown", logger.Err(err))
		return err
	}

	s.log.Info("HTTP server stopped")
	return nil
}
