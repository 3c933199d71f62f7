package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	openmusic "github.com/sosehq/openmusic-go"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config holds server configuration
type Config struct {
	Port       int
	SampleRate int
}

// Server is the HTTP front end over the generator: a form in, a rendered
// composition out.
type Server struct {
	config    Config
	router    *chi.Mux
	templates *template.Template
	logger    *slog.Logger
}

// New creates a new server
func New(cfg Config) (*Server, error) {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = openmusic.DefaultSampleRate
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		config:    cfg,
		router:    chi.NewRouter(),
		templates: tmpl,
		logger:    logger,
	}

	s.setupRoutes()
	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	r := s.router

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Post("/generate", s.handleGenerate)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until an interrupt arrives.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute, // rendering long pieces takes a while
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		s.logger.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", slog.Any("error", err))
		}
		close(done)
	}()

	s.logger.Info("server starting", slog.Int("port", s.config.Port))
	fmt.Printf("\n  openmusic running at: http://localhost:%d\n\n", s.config.Port)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-done
	return nil
}
