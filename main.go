// server/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/ViniZap4/noteful-server/config"
	httphandlers "github.com/ViniZap4/noteful-server/http"
	"github.com/ViniZap4/noteful-server/logging"
	"github.com/ViniZap4/noteful-server/seed"
	"github.com/ViniZap4/noteful-server/store"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to .env file")
	seedDB := flag.Bool("seed", false, "Replace the database contents with fixtures and exit")
	seedFile := flag.String("seed-file", "", "Fixtures file for -seed (default: bundled fixtures)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if *seedDB {
		if err := runSeed(ctx, db, *seedFile); err != nil {
			logger.Error().Err(err).Msg("Seeding failed")
			return
		}
		logger.Info().Msg("Database seeded")
		return
	}

	server := httphandlers.NewServer(db, logger)
	app := server.App(httphandlers.Config{
		APIPrefix:   cfg.APIPrefix,
		CORSOrigins: cfg.CORSOrigins,
	})

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("Shutdown failed")
		}
	}()

	logger.Info().
		Str("addr", cfg.Addr()).
		Str("env", cfg.Environment).
		Msg("Server starting")
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Error().Err(err).Msg("Server stopped")
	}
}

func runSeed(ctx context.Context, db *store.Store, path string) error {
	var (
		ds  *seed.Dataset
		err error
	)
	if path == "" {
		ds, err = seed.Default()
	} else {
		ds, err = seed.Load(path)
	}
	if err != nil {
		return err
	}
	return seed.Apply(ctx, db, ds)
}
