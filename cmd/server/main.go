// @title           Reservations API
// @version         1.0
// @description     Accounts, sessions and reservations over a key-value store.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/reservation-system/internal/api"
	"github.com/99minutos/reservation-system/internal/core/ports"
	"github.com/99minutos/reservation-system/internal/core/service"
	mongodb "github.com/99minutos/reservation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/reservation-system/internal/infrastructure/db/redis"
	"github.com/99minutos/reservation-system/internal/infrastructure/kv/memory"
	"github.com/99minutos/reservation-system/internal/pkg/config"
	"github.com/99minutos/reservation-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "reservation-system",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	log.Info().Str("backend", cfg.Store.Backend).Msg("store ready")

	health := map[string]ports.Pinger{}
	if p, ok := kv.(ports.Pinger); ok {
		health[cfg.Store.Backend] = p
	}

	accounts := service.NewAccountDirectory(kv, logger.Named("accounts"))
	sessions := service.NewSessionManager(accounts, kv, logger.Named("sessions"))
	store := service.NewReservationStore(kv, logger.Named("reservations"))
	reservations := service.NewReservationService(store, logger.Named("reservations"))

	e, err := api.NewRouter(api.Dependencies{
		Accounts:      accounts,
		Sessions:      sessions,
		Reservations:  reservations,
		Tokens:        service.NewTokenService(cfg.JWTSecret),
		Health:        health,
		SecureCookies: cfg.IsProduction(),
		Log:           logger.Named("http"),
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openStore connects the backend named by STORE_BACKEND. The returned
// func releases its connections.
func openStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.NewStore(), func() {}, nil

	case config.BackendMongo:
		store, err := mongodb.Open(ctx, mongodb.Config{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = store.Close(dctx)
		}
		return store, closeFn, nil

	default:
		store, err := redisdb.Open(ctx, redisdb.Config{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}
}
