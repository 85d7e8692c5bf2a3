package main

import (
	"context"
	"fmt"

	"github.com/ozerovd/go-sale-keeper/internal/adapter"
	"github.com/ozerovd/go-sale-keeper/internal/client"
	"github.com/ozerovd/go-sale-keeper/internal/config"
	"github.com/ozerovd/go-sale-keeper/internal/localstore"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/pos"
	"github.com/ozerovd/go-sale-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewTerminalLogger("go-sale-pos")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	db, err := localstore.NewConnectSQLite(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect local storage")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate local storage")
	}
	storages := localstore.NewClientStorages(db, log)

	ui, err := tui.New(storages.Cache, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	services := pos.NewServices(storages, serverAdapter, ui.Notifier(), cfg.Workers.CachePageSize, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init terminal app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal run error")
	}
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
