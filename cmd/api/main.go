package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/fkhayef/ghusers/internal/config"
	"github.com/fkhayef/ghusers/internal/logging"
	"github.com/fkhayef/ghusers/internal/user"
	"github.com/fkhayef/ghusers/internal/web"
)

// @title        GitHub Users API
// @version      1.0
// @description  Lists GitHub users and shows per-user profile details.
// @BasePath     /api/v1
func main() {
	// Load configuration (.env first, then environment variables)
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New(logging.Config{})
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	srv := newServer(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("github_api", cfg.GitHubAPIURL).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newServer wires the user feature behind the HTTP router
func newServer(cfg *config.Config, logger zerolog.Logger) *http.Server {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	userRepo := user.NewRepository(httpClient, cfg.GitHubAPIURL, cfg.UserAgent)
	userService := user.NewService(userRepo)

	return &http.Server{
		Addr:    cfg.Addr(),
		Handler: web.NewRouter(userService, logging.Component(logger, "http")),
	}
}
