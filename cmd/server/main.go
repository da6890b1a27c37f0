package main

import (
	"context"
	"fmt"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/adapter"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	httphandler "github.com/Okafor-Chiagozie/EverKeep-sub000/internal/handler/http"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/server"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("everkeep-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	mail := adapter.NewMailClient(cfg.Mail, log)

	media, err := adapter.NewS3MediaStore(ctx, cfg.Media, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media store")
	}

	services := service.NewServices(repos, mail, media, cfg, log)
	handlers := httphandler.NewHandler(services, cfg.App.ServiceKey, log)

	// A zero scan interval means an external scheduler drives the sweeps,
	// either through the internal scan endpoint or cmd/scanner.
	background := workers.NewWorkers()
	if cfg.Workers.ScanInterval > 0 {
		background = workers.NewWorkers(
			workers.NewScanJob(services.ScannerService, cfg.Workers.ScanInterval, log),
		)
	}

	srv, err := server.NewServer(handlers.Init(), background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
