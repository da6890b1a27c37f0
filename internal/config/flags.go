package config

import (
	"flag"
	"os"
)

// ParseFlags reads the command-line flags once per process and maps them onto
// a [StructuredConfig]. Flags cover the settings an operator commonly changes
// when running locally; everything else comes from the environment or the
// JSON file.
func ParseFlags() *StructuredConfig {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	fs.StringVar(&cfg.Server.HTTPAddress, "a", "", "address and port the HTTP server listens on")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database connection string")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "database driver: pgx or sqlite3")
	fs.StringVar(&cfg.App.BaseURL, "base-url", "", "public origin used to build share links")
	fs.DurationVar(&cfg.Workers.ScanInterval, "scan-interval", 0, "interval between inactivity scans, 0 disables the worker")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")

	// ContinueOnError keeps test binaries with their own flags working.
	_ = fs.Parse(os.Args[1:])

	return cfg
}
