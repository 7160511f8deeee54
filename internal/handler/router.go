package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/service"
)

// RouterConfig controls the optional parts of the API.
type RouterConfig struct {
	// APISecret enables bearer token auth on /api/v1 when set.
	APISecret string
	RateLimit float64
	RateBurst int
}

// NewRouter wires the API routes. ctx bounds background work started by
// middleware.
func NewRouter(ctx context.Context, svc *service.GeneratorService, cfg RouterConfig) http.Handler {
	gen := NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(middleware.RateLimit(ctx, cfg.RateLimit, cfg.RateBurst))
		}
		if cfg.APISecret != "" {
			r.Use(middleware.JWTAuth(cfg.APISecret))
		}

		r.Get("/tiers", gen.HandleTiers)
		r.Post("/generate", gen.HandleGenerate)
		r.Post("/score", gen.HandleScore)
	})

	return r
}
