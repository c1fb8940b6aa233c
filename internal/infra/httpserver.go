package infra

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// HTTPServer owns the listener lifecycle so main only deals with Start and
// Shutdown.
type HTTPServer struct {
	srv *http.Server
}

func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{srv: &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		MaxHeaderBytes:    1 << 20,
	}}
}

// Addr reports the configured listen address.
func (s *HTTPServer) Addr() string {
	if s.srv == nil {
		return ""
	}
	return s.srv.Addr
}

// Start blocks serving requests. A graceful Shutdown is reported as nil, not
// as http.ErrServerClosed.
func (s *HTTPServer) Start() error {
	if s.srv == nil {
		return nil
	}
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
