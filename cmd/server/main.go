package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/welldanyogia/webrana-resource-api/internal/api"
	"github.com/welldanyogia/webrana-resource-api/internal/auth"
	"github.com/welldanyogia/webrana-resource-api/internal/config"
	"github.com/welldanyogia/webrana-resource-api/internal/database"
	"github.com/welldanyogia/webrana-resource-api/internal/events"
	"github.com/welldanyogia/webrana-resource-api/internal/logger"
	"github.com/welldanyogia/webrana-resource-api/internal/repository"
	"github.com/welldanyogia/webrana-resource-api/internal/validator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadWithValidation()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Setup logger
	log := logger.New(os.Stdout, cfg.SlogLevel())
	slog.SetDefault(log)
	cfg.LogConfig(log)

	slog.Info("Starting resource API server...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.SlogLevel() == slog.LevelDebug)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	if cfg.SeedAirports {
		if err := database.SeedAirports(ctx, repository.NewAirportRepository(db, cfg.StoreTimeout)); err != nil {
			return err
		}
	}

	security := logger.NewSecurityLogger(log)

	provider := auth.NewProvider(repository.NewUserRepository(db, cfg.StoreTimeout), auth.Options{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
		Policy: validator.PasswordPolicy{
			MinLength:    cfg.PasswordMinLength,
			RequireMixed: cfg.PasswordRequireMixed,
		},
	})

	hub := events.NewHub(log)
	go hub.Run(ctx)

	e := api.NewRouter(&api.RouterConfig{
		Ctx:                  ctx,
		DB:                   db,
		Logger:               log,
		Security:             security,
		Authenticator:        provider,
		Hub:                  hub,
		StoreTimeout:         cfg.StoreTimeout,
		AllowedOrigins:       cfg.Origins(),
		Production:           cfg.AppEnv == "production",
		RateLimit:            cfg.RateLimitRequests,
		RateBurst:            cfg.RateLimitBurst,
		FavoriteDeleteStatus: cfg.FavoriteDeleteStatus,
		WorkoutDeleteStatus:  cfg.WorkoutDeleteStatus,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.APIPort)
		slog.Info("HTTP server listening", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.Any("error", err))
	}
	hub.Stop()

	slog.Info("Server stopped")
	return nil
}
