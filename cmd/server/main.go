package main

import (
	"context"
	"fmt"

	"github.com/ozerovd/go-sale-keeper/internal/config"
	httphandler "github.com/ozerovd/go-sale-keeper/internal/handler/http"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/server"
	"github.com/ozerovd/go-sale-keeper/internal/service"
	"github.com/ozerovd/go-sale-keeper/internal/store"
	"github.com/ozerovd/go-sale-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-sale-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(*storages, cfg, log)
	handler := httphandler.NewHandler(services, log)

	sweeper := workers.NewRefSweeper(storages.SaleRepository, cfg.Workers, log)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	srv, err := server.NewServer(handler, cfg.Server, log)
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
