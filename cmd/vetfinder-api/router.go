// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/vetfinder-hk/vetfinder/cmd/vetfinder-api/handlers"
	"github.com/vetfinder-hk/vetfinder/cmd/vetfinder-api/middleware"
	"github.com/vetfinder-hk/vetfinder/internal/assistant"
	"github.com/vetfinder-hk/vetfinder/internal/cache"
	"github.com/vetfinder-hk/vetfinder/internal/config"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/recommend"
	"github.com/vetfinder-hk/vetfinder/internal/store"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config, st *store.Store, cacheClient cache.Client, completer assistant.Completer) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(middleware.RequestContext)
	r.Use(chimiddleware.Timeout(cfg.Server.WriteTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"vetfinder"}`))
	})

	var rankerOpts []recommend.RankerOption
	if cacheClient != nil {
		rankerOpts = append(rankerOpts, recommend.WithCache(cacheClient, cfg.Cache.TTL))
	}
	ranker := recommend.NewRanker(st, logger, rankerOpts...)

	extractor := assistant.NewIntentExtractor(completer, logger)
	responder := assistant.NewResponder(completer, logger)
	chatService := assistant.NewService(extractor, responder, ranker, logger, cfg.Recommend.Limit)

	chatHandler := handlers.NewChatHandler(logger, chatService)
	vetsHandler := handlers.NewVetsHandler(logger, st)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)
		r.Get("/vets", vetsHandler.List)
		r.Get("/vets/{registrationNo}", vetsHandler.Get)
		r.Get("/districts", vetsHandler.Districts)
	})

	return r
}
