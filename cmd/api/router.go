package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
)

// routes carries everything the router needs. Stats is nil when the database is unavailable.
type routes struct {
	cfg      config.Config
	gatherer prometheus.Gatherer
	generate *handler.GeneratorHandler
	strength *handler.StrengthHandler
	stats    *handler.StatsHandler
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rt.cfg.RateLimit.RPS, rt.cfg.RateLimit.Burst))
		r.Post("/api/v1/generate", rt.generate.HandleGenerate)
		r.Post("/api/v1/strength", rt.strength.HandleEvaluate)
	})

	if rt.stats != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(rt.cfg.JWTSecret))
			r.Get("/api/v1/stats", rt.stats.HandleSummary)
		})
	}

	return r
}
