// Command scanner runs a single inactivity sweep and exits. It is meant for
// external schedulers (cron, Cloud Scheduler) that prefer a one-shot binary
// over hitting the internal scan endpoint.
package main

import (
	"context"
	"os"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/adapter"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
)

func main() {
	log := logger.NewLogger("everkeep-scanner")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

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

	report := services.ScannerService.Run(log.WithContext(ctx))

	log.Info().
		Int("inactiveUsers", report.InactiveUsers).
		Int("vaultsDelivered", report.VaultsDelivered).
		Bool("success", report.Success).
		Msg("inactivity sweep finished")

	if !report.Success || len(report.Errors) > 0 {
		log.Error().Strs("errors", report.Errors).Msg("sweep reported errors")
		os.Exit(1)
	}
}
