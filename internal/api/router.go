// Package api serves the score store over HTTP: the REST endpoints the
// score client talks to, health checks and Prometheus metrics.
package api

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Repository is the part of the score store the API uses.
// *storage.Store implements it; tests can pass a fake.
type Repository interface {
	SaveScore(player string, value int) (storage.ScoreEntry, error)
	TopScores(limit int) ([]storage.ScoreEntry, error)
	AllScores() ([]storage.ScoreEntry, error)
	PlayerScores(player string) ([]storage.ScoreEntry, error)
	PlayerHighScore(player string) (*storage.ScoreEntry, error)
	DeleteScore(id int64) (bool, error)
	CountAtLeast(value int) (int, error)
	Stats() (*storage.Stats, error)
}

// RouterConfig contains all dependencies needed to construct the HTTP router.
type RouterConfig struct {
	// Store holds the scores (required).
	Store Repository

	// RateLimiter is an optional pre-configured rate limiter.
	// If nil, a new one will be created using RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is optional configuration for the rate limiter.
	// Only used if RateLimiter is nil. If both are nil, uses DefaultRateLimitConfig.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins is an optional list of allowed CORS origins.
	// If nil, every origin is allowed.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware.
	DisableLogging bool

	// Logger receives request and handler logs. Nil discards them.
	Logger *log.Logger
}

// routerHandlers holds the dependencies of the handler functions.
type routerHandlers struct {
	store  Repository
	logger *log.Logger
}

// NewRouter constructs the HTTP router with all middleware and routes.
// It starts no goroutines unless it has to create its own rate limiter,
// so tests should pass one they can Stop.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := chi.NewRouter()

	// Middleware - Order matters!
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if !cfg.DisableLogging {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
			Logger:  logger.StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel}),
			NoColor: true,
		}))
	}
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	// Rate limiting (BEFORE CORS to reject early and save CPU)
	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	h := &routerHandlers{
		store:  cfg.Store,
		logger: logger,
	}

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/scores", func(r chi.Router) {
		r.Post("/", h.handleCreateScore)
		r.Get("/", h.handleListScores)
		r.Get("/top", h.handleTopScores)
		r.Get("/stats", h.handleStats)
		r.Get("/rank", h.handleRank)
		r.Get("/player/{name}", h.handlePlayerScores)
		r.Get("/player/{name}/highest", h.handlePlayerHighest)
		r.Delete("/{id}", h.handleDeleteScore)
	})

	return r
}
