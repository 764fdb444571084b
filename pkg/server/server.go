// Package server exposes the badge formatters over HTTP.
//
// Every endpoint is a pure formatting call: the query and path parameters are
// validated, passed to the matching formatter in [badges], and the resulting
// markdown is written back as text/markdown. Nothing is fetched or cached.
//
//	GET /v1/health
//	GET /v1/badges/dependency?name=react&registry=npm&logo=react
//	GET /v1/badges/node/{owner}/{repo}/{pkg}?env=dev&logo=vue.js
//	GET /v1/badges/node/{owner}/{repo}?pkg=@vue/cli
//	GET /v1/badges/go/{owner}/{repo}
//
// Failures are returned as JSON with the error code and the request ID:
//
//	{"code":"INVALID_REGISTRY","error":"unknown registry \"maven\" ...","request_id":"..."}
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/badgegen/pkg/errors"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// MarkdownContentType is the content type of successful badge responses.
const MarkdownContentType = "text/markdown; charset=utf-8"

// Options configures a [Server].
type Options struct {
	// Logger receives one access log line per request. Defaults to log.Default().
	Logger *log.Logger

	// ShutdownTimeout bounds graceful shutdown in [Server.ListenAndServe].
	// Defaults to 5 seconds.
	ShutdownTimeout time.Duration
}

// Server is the badge HTTP API. It implements [http.Handler].
type Server struct {
	logger          *log.Logger
	shutdownTimeout time.Duration
	router          chi.Router
}

// New creates a Server with all routes registered.
func New(opts Options) *Server {
	s := &Server{
		logger:          opts.Logger,
		shutdownTimeout: opts.ShutdownTimeout,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 5 * time.Second
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.New(errors.ErrCodeUnsupported, "method %s not allowed", r.Method))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Route("/badges", func(r chi.Router) {
			r.Get("/dependency", s.handleDependency)
			r.Get("/node/{owner}/{repo}", s.handleNode)
			r.Get("/node/{owner}/{repo}/{pkg}", s.handleNode)
			r.Get("/go/{owner}/{repo}", s.handleGo)
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("Listening", "addr", addr)

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		s.logger.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
