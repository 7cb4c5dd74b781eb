package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds configuration for the HTTP server
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns the configuration used when no environment overrides are set
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:            8080,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 15 * time.Second,
	}
}

// ServerConfigFromEnv returns the defaults overridden by CLOCKFACE_HOST and CLOCKFACE_PORT
func ServerConfigFromEnv() (ServerConfig, error) {
	cfg := DefaultServerConfig()
	cfg.Host = os.Getenv("CLOCKFACE_HOST")

	if raw := os.Getenv("CLOCKFACE_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return ServerConfig{}, fmt.Errorf("invalid CLOCKFACE_PORT %q", raw)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Server serves the clock API until its context is cancelled
type Server struct {
	http   *http.Server
	logger *slog.Logger
	grace  time.Duration
}

// NewServer creates a new API server
func NewServer(handler http.Handler, config ServerConfig, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
			Handler:      handler,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
		},
		logger: logger,
		grace:  config.ShutdownTimeout,
	}
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Run listens on the configured address and blocks until ctx is done or the
// listener fails. On cancellation in-flight requests get the shutdown timeout to finish.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.http.Addr, err)
	}
	s.logger.Info("HTTP server listening", slog.String("addr", ln.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.http.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
