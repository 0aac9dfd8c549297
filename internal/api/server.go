package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultAddr is where the score server listens unless told otherwise.
const DefaultAddr = ":8080"

// Server is the HTTP score server.
type Server struct {
	http        *http.Server
	rateLimiter *IPRateLimiter
	logger      *log.Logger
}

// NewServer creates a server for store on addr. The rate limiter's
// cleanup goroutine runs until Shutdown.
func NewServer(addr string, store Repository, logger *log.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	limiter := NewIPRateLimiter(DefaultRateLimitConfig)
	router := NewRouter(RouterConfig{
		Store:       store,
		RateLimiter: limiter,
		Logger:      logger,
	})

	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		rateLimiter: limiter,
		logger:      logger,
	}
}

// Handler returns the HTTP handler for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// ListenAndServe blocks until the server stops. A clean Shutdown returns nil.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("api: cannot listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting score API", "address", ln.Addr().String())
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server and its background workers.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down score API")
	s.rateLimiter.Stop()
	return s.http.Shutdown(ctx)
}
