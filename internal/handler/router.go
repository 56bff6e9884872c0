package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passgen-go/internal/middleware"
)

// RateLimit configures the per-IP limiter on generation routes.
type RateLimit struct {
	RPS   float64
	Burst int
}

// NewRouter wires the generation routes. The unversioned paths and
// their /api/v1 equivalents are both served.
func NewRouter(ctx context.Context, gen *GeneratorHandler, limit RateLimit) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/v1/complexities", gen.HandleTiers)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, limit.RPS, limit.Burst))
		r.Post("/generate", gen.HandleGenerate)
		r.Post("/batch-generate", gen.HandleBatchGenerate)
		r.Post("/api/v1/generate", gen.HandleGenerate)
		r.Post("/api/v1/generate/batch", gen.HandleBatchGenerate)
	})

	return r
}
