package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/courtbook/courtbook-backend/internal/app"
	"github.com/courtbook/courtbook-backend/internal/booking"
	"github.com/courtbook/courtbook-backend/internal/config"
	"github.com/courtbook/courtbook-backend/internal/db"
	"github.com/courtbook/courtbook-backend/internal/pkg/storage"
	"github.com/courtbook/courtbook-backend/internal/seed"
)

func setupLogger(isProduction bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if !isProduction {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogger(cfg.IsProduction)

	// Connect DB when a DSN is configured; otherwise run on the seeded
	// in-memory store.
	var pool *pgxpool.Pool
	if cfg.DBDSN != "" {
		pool, err = db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to db")
		}
		defer pool.Close()
	} else {
		log.Warn().Msg("DB_DSN not set, using in-memory store with demo data")
	}

	// Local file storage for catalog images
	fileStorage, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init file storage")
	}

	var pricing booking.PricingStrategy = booking.FlatPricing{}
	if cfg.Pricing == config.PricingHourly {
		pricing = booking.HourlyPricing{}
	}

	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DBPool:       pool,
		FileStorage:  fileStorage,
		Pricing:      pricing,
	})

	if pool == nil {
		if err := seed.Demo(ctx, container.SportService, container.CourtService, container.BookingService); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server terminated with error")
		os.Exit(1)
	}

	log.Info().Msg("server exited gracefully")
}
