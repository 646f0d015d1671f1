package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/jchau/itin/internal/cli"
	"github.com/jchau/itin/internal/config"
	"github.com/jchau/itin/internal/db"
	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/repository"
	"github.com/jchau/itin/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.itin/itin.db
	dbPath := os.Getenv("ITIN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".itin", "itin.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	tripRepo := repository.NewSQLiteTripRepo(database)
	itemRepo := repository.NewSQLiteItemRepo(database)

	app := &cli.App{
		Trips: service.NewTripService(tripRepo),
		Itineraries: service.NewItineraryService(tripRepo, itemRepo, service.Defaults{
			DayStart:     cfg.DayStartTime(),
			ItemDuration: domain.Duration(cfg.DefaultDurationMin),
			TransitMode:  domain.TransitMode(cfg.DefaultTransitMode),
		}),
		Config: cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
