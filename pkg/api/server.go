// Package api provides the HTTP API layer over a scanned project.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	apicodeowners "github.com/ownerscan/codeowners/pkg/api/codeowners"
	"github.com/ownerscan/codeowners/pkg/codeowners"
)

// Server is the HTTP API server (§13.1).
type Server struct {
	router chi.Router
	port   int
	dev    bool
}

// Options configures the server.
type Options struct {
	Port    int
	DevMode bool
}

// NewServer wires the router over an already-scanned Engine.
func NewServer(engine *codeowners.Engine, opts *Options) *Server {
	s := &Server{port: opts.Port, dev: opts.DevMode}
	s.setupRoutes(engine)
	return s
}

func (s *Server) setupRoutes(engine *codeowners.Engine) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestIDHeader)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.dev {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	handler := apicodeowners.NewHandler(engine)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"status":"ok"}`)) })
		handler.Routes(r)
	})

	s.router = r
}

// requestIDHeader tags every response with an X-Request-Id header
// holding a fresh random UUID, so each response carries its own
// identifier.
func requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("starting codeowners API server on %s", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
