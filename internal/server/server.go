// Package server exposes the grammar engine over HTTP.
//
// Routes:
//
//	GET  /healthz
//	POST /v1/validate   {"text"}                              -> {"issues"}
//	POST /v1/resolve    {"grammar", "width", "module_width"}  -> {"modules"}
//	POST /v1/stack      {"expression", "height", "floors"}    -> {"floors"}
//	POST /v1/blueprint  building spec JSON                    -> blueprint document
//
// Failures are returned as {"code", "message"} with a status derived from
// the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/facadegen/pkg/catalog"
	"github.com/matzehuels/facadegen/pkg/observability"
	"github.com/matzehuels/facadegen/pkg/pipeline"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// DefaultMaxModules caps the modules or floors one request may place on a
// single facade or stack.
const DefaultMaxModules = 10000

// Options holds request defaults.
type Options struct {
	// ModuleWidth sizes modules when a request gives no width and no
	// catalog is loaded.
	ModuleWidth   int
	DefaultModule string
	Catalog       *catalog.Catalog

	// MaxModules caps placements per facade or stack. Zero means
	// DefaultMaxModules.
	MaxModules int
}

// Server handles API requests.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
	router chi.Router
}

// New creates a server that builds blueprints through runner. A runner
// without its own MaxModules takes the server's.
func New(runner *pipeline.Runner, opts Options) *Server {
	if opts.ModuleWidth <= 0 {
		opts.ModuleWidth = pipeline.DefaultModuleWidth
	}
	if opts.MaxModules <= 0 {
		opts.MaxModules = DefaultMaxModules
	}
	if runner.MaxModules == 0 {
		runner.MaxModules = opts.MaxModules
	}
	s := &Server{
		runner: runner,
		logger: runner.Logger,
		opts:   opts,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/validate", s.handleValidate)
		r.Post("/resolve", s.handleResolve)
		r.Post("/stack", s.handleStack)
		r.Post("/blueprint", s.handleBlueprint)
	})
	return r
}

// instrument logs each request and reports it to the HTTP hooks.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
		s.logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
