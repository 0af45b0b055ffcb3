// Package server exposes the import core over a small JSON HTTP API.
package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/time/rate"

	"github.com/lrendell/fitimport/internal/catalog"
	"github.com/lrendell/fitimport/internal/config"
	"github.com/lrendell/fitimport/internal/importer"
	"github.com/lrendell/fitimport/internal/match"
)

// Server wires the matching core behind HTTP handlers. Every handler reads
// the catalog through the engine's index, taken once at construction, so all
// endpoints answer from the same snapshot. Swapping the catalog means
// building a new Server.
type Server struct {
	cfg     config.Config
	engine  *match.Engine
	norm    *importer.Normalizer
	limiter *rate.Limiter
}

// New builds a Server over an already-loaded catalog.
func New(cfg config.Config, holder *catalog.Holder) *Server {
	engine := match.NewEngine(holder.Current())
	return &Server{
		cfg:     cfg,
		engine:  engine,
		norm:    importer.NewNormalizer(engine, cfg.AIThreshold),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestsPerSecond),
	}
}

// Handler returns the API mux with rate limiting applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/match", s.handleMatch)
	mux.HandleFunc("/api/scan", s.handleScan)
	mux.HandleFunc("/api/voice", s.handleVoice)
	mux.HandleFunc("/api/import/workout", s.handleImportWorkout)
	mux.HandleFunc("/api/import/recipe", s.handleImportRecipe)
	return s.throttle(mux)
}

// throttle rejects requests past the configured rate instead of queueing.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Run serves until interrupted, then shuts down gracefully.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return srv.Shutdown(ctx)
}
