package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	domproduct "example.com/producthub/internal/domain/product"
	"example.com/producthub/internal/infra/config"
	"example.com/producthub/internal/infra/persistence/mysql"
	"example.com/producthub/internal/infra/persistence/postgres"
	apihttp "example.com/producthub/internal/interface/http"
	"example.com/producthub/internal/seed"
	productuc "example.com/producthub/internal/usecase/product"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if !cfg.IsDev() {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	mainCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeStore, err := openStore(mainCtx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open store")
	}
	defer closeStore()

	productService := productuc.NewService(repo)

	if cfg.Seed {
		if err := seed.Run(mainCtx, logger, productService); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed catalog")
		}
	}

	corsOpts := apihttp.NewCORSOptions(cfg.CORS.AllowedOrigins)
	if len(cfg.CORS.AllowedOrigins) == 0 && cfg.IsDev() {
		// No configured origins in dev: open up for the local admin UI.
		corsOpts = apihttp.DevCORSOptions()
	}

	api := apihttp.NewAPI(apihttp.Dependencies{
		ProductService: productService,
		Logger:         logger,
		CORS:           corsOpts,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.Router(),
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Str("driver", cfg.Database.Driver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server stopped")
			cancel()
		}
	}()

	<-mainCtx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

type productStore interface {
	domproduct.Repository
	EnsureSchema(ctx context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (domproduct.Repository, func(), error) {
	var repo productStore
	var closeFn func()

	switch cfg.Database.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
		defer cancelPing()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		repo = postgres.NewProductRepository(pool)
		closeFn = pool.Close

	default: // mysql
		db, err := sql.Open("mysql", cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
		defer cancelPing()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping mysql: %w", err)
		}
		repo = mysql.NewProductRepository(db)
		closeFn = func() { db.Close() }
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return repo, closeFn, nil
}
