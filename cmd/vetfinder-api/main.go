// Package main provides the vet finder API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vetfinder-hk/vetfinder/internal/assistant"
	"github.com/vetfinder-hk/vetfinder/internal/cache"
	"github.com/vetfinder-hk/vetfinder/internal/config"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/store"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	st, err := loadStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load vet register")
	}

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("dataset", cfg.Dataset.Source).
		Int("records", st.Len()).
		Msg("Starting vet finder API")

	cacheClient := newCacheClient(cfg, logger)
	completer := assistant.SelectCompleter(assistant.ProviderCredentials{
		OpenAI: assistant.OpenAIConfig{
			APIKey:      cfg.AI.OpenAI.APIKey,
			Model:       cfg.AI.OpenAI.Model,
			BaseURL:     cfg.AI.OpenAI.BaseURL,
			Temperature: cfg.AI.OpenAI.Temperature,
			Timeout:     cfg.AI.OpenAI.Timeout,
		},
		Gemini: assistant.GeminiConfig{
			APIKey:  cfg.AI.Gemini.APIKey,
			Model:   cfg.AI.Gemini.Model,
			BaseURL: cfg.AI.Gemini.BaseURL,
			Timeout: cfg.AI.Gemini.Timeout,
		},
	}, logger)

	router := NewRouter(logger, cfg, st, cacheClient, completer)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	if cacheClient != nil {
		if err := cacheClient.Close(); err != nil {
			logger.Error().Err(err).Msg("Cache close failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

func loadStore(cfg *config.Config) (*store.Store, error) {
	switch cfg.Dataset.Source {
	case "json":
		return store.LoadJSONFile(cfg.Dataset.Path)
	case "sqlite":
		return store.LoadSQLite(cfg.Dataset.Path)
	default:
		return store.LoadEmbedded()
	}
}

func newCacheClient(cfg *config.Config, logger *observability.Logger) cache.Client {
	switch cfg.Cache.Driver {
	case "redis":
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, falling back to memory cache")
			return cache.NewMemoryClient(cfg.Cache.MaxEntries)
		}
		return client
	case "none":
		return nil
	default:
		return cache.NewMemoryClient(cfg.Cache.MaxEntries)
	}
}
