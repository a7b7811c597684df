package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ewilliams-labs/moodmix/internal/core/services"
)

// Config holds the HTTP shell settings.
type Config struct {
	CORSOrigins       []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxUploadBytes    int64
}

const defaultMaxUploadBytes = 10 << 20

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator
	diag   *services.Diagnostics
	cfg    Config
	router chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator, diag *services.Diagnostics, cfg Config) *Handler {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	h := &Handler{
		svc:    svc,
		diag:   diag,
		cfg:    cfg,
		router: chi.NewRouter(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(requestContext)
	h.router.Use(chimiddleware.Recoverer)

	h.router.Get("/health", h.HealthCheck)
	h.router.Get("/debug/spotify", h.DebugSpotify)
	h.router.Handle("/metrics", promhttp.Handler())

	h.router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         86400,
		}))
		if h.cfg.RateLimitRequests > 0 {
			r.Use(httprate.LimitByIP(h.cfg.RateLimitRequests, h.cfg.RateLimitWindow))
		}
		r.Post("/analyze", h.Analyze)
	})
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
