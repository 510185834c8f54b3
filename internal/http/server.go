package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mediashelf/mediashelf/internal/config"
	"github.com/mediashelf/mediashelf/internal/repository"
	"github.com/mediashelf/mediashelf/internal/store"
)

// Server wires HTTP routing, middleware, and handlers.
type Server struct {
	cfg     config.Config
	store   *store.Store
	repo    *repository.Repository
	logger  *zap.SugaredLogger
	router  chi.Router
	httpSrv *http.Server
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, st *store.Store, repo *repository.Repository, logger *zap.SugaredLogger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := &Server{
		cfg:    cfg,
		store:  st,
		repo:   repo,
		logger: logger,
		router: r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/test", s.handleTest)
		r.Route("/media", func(r chi.Router) {
			r.Get("/", s.handleListMedia)
			r.Post("/", s.handleCreateMedia)
			r.Put("/{id}", s.handleUpdateMedia)
			r.Delete("/{id}", s.handleDeleteMedia)
		})
	})
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, http.StatusNotFound, "endpoint not found")
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// Start boots the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSecs) * time.Second,
	}

	s.logger.Infow("server listening", "port", s.cfg.Port, "environment", s.cfg.Env)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
