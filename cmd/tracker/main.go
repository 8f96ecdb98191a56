package main

import (
	"fmt"
	"os"

	"trade-tracker/internal/cli"
	"trade-tracker/internal/config"
	"trade-tracker/internal/kv"
	"trade-tracker/internal/logging"
	"trade-tracker/internal/state"
	"trade-tracker/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tracker: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.LogConfig{
		Level:      cfg.Logging.Level,
		Console:    cfg.Logging.Console,
		File:       cfg.Logging.File,
		FilePath:   cfg.LogPath(),
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	})

	// The store being unavailable is fatal only here, at bootstrap.
	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "tracker: cannot create data directory: %v\n", err)
		os.Exit(1)
	}
	kvStore, err := kv.NewSQLiteStore(cfg.DatabasePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tracker: cannot open database: %v\n", err)
		os.Exit(1)
	}
	defer kvStore.Close()

	gateway := store.NewGateway(kvStore, logger, store.WithKey(cfg.Storage.Key))
	container := state.NewContainer(gateway)

	app := &cli.App{
		Config: cfg,
		Logger: logger,
		State:  container,
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
