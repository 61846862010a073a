// Package server exposes the writing assistant as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"writeassist/internal/analytics"
	"writeassist/internal/config"
	"writeassist/internal/service"
)

// Tracker is the subset of the analytics store used by the API. A nil Tracker disables tracking.
type Tracker interface {
	TrackAction(ctx context.Context, user, action string, words int) error
	UserStats(ctx context.Context, user string) (analytics.UserStats, error)
	Leaderboard(ctx context.Context, limit int) ([]analytics.LeaderboardEntry, error)
}

// Server represents the HTTP server.
type Server struct {
	cfg       config.ServerConfig
	svc       *service.Assistant
	tracker   Tracker
	log       zerolog.Logger
	router    *chi.Mux
	httpSrv   *http.Server
	startTime time.Time
}

// New builds the router. tracker may be nil.
func New(cfg config.ServerConfig, svc *service.Assistant, tracker Tracker, log zerolog.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		svc:       svc,
		tracker:   tracker,
		log:       log,
		router:    chi.NewRouter(),
		startTime: time.Now(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the router wrapped in response compression.
func (s *Server) Handler() http.Handler {
	return gzhttp.GzipHandler(s.router)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(hlog.NewHandler(s.log))
	s.router.Use(requestIDLogger)
	s.router.Use(hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	}))
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.corsMiddleware)
	s.router.Use(s.requestSizeLimitMiddleware)
	timeout := time.Duration(s.cfg.RequestTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	s.router.Use(middleware.Timeout(timeout))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.health)
	s.router.Route("/api", func(r chi.Router) {
		r.Use(middleware.SetHeader("Content-Type", "application/json"))
		r.Get("/status", s.status)

		r.Post("/analyze", s.analyze)
		r.Post("/grammar", s.grammar)
		r.Post("/readability", s.readability)
		r.Post("/statistics", s.statistics)
		r.Post("/tone", s.tone)
		r.Post("/suggestions", s.suggestions)

		r.Post("/summarize", s.summarize)
		r.Post("/rewrite", s.rewrite)
		r.Post("/simplify", s.simplify)
		r.Post("/improve", s.improve)
		r.Post("/proofread", s.proofread)
		r.Post("/translate", s.translate)
		r.Post("/alt-text", s.altText)

		r.Get("/analytics/user/{id}", s.userStats)
		r.Get("/analytics/leaderboard", s.leaderboard)
	})
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
}

// requestIDLogger adds chi's request id to the request logger.
func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.allowedOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-ID, X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) allowedOrigin(origin string) string {
	for _, o := range s.cfg.AllowedOrigins {
		if o == "*" {
			return "*"
		}
		if origin != "" && strings.EqualFold(o, origin) {
			return origin
		}
	}
	return ""
}

func (s *Server) requestSizeLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.MaxRequestBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpSrv.Addr).Msg("server listening")
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.log.Info().Msg("shutting down")
	return s.httpSrv.Shutdown(shutdownCtx)
}
