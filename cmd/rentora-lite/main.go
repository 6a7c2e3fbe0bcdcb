// rentora-lite is a self-contained in-memory backend for local
// development. It serves the same /api contract as the production
// service, seeded with deterministic fixtures, so the client library and
// rentctl can be exercised without a real deployment.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rentora/rentora-go/cmd/rentora-lite/internal/api"
	"github.com/rentora/rentora-go/cmd/rentora-lite/internal/store"
)

const (
	defaultPort   = "8081"
	defaultSecret = "rentora-lite-dev-secret"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	gin.SetMode(gin.ReleaseMode)

	st := store.New()
	store.Seed(st)
	logger.Info().Msg("seeded development fixtures")

	port := getEnv("RENTORA_LITE_PORT", defaultPort)
	secret := getEnv("RENTORA_LITE_JWT_SECRET", defaultSecret)

	router := api.SetupRouter(api.Config{
		Store:     st,
		JWTSecret: []byte(secret),
		Logger:    logger,
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("address", server.Addr).Msg("rentora-lite is ready")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
	logger.Info().Msg("rentora-lite stopped")
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
