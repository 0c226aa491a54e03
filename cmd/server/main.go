package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-member-gate/internal/config"
	"github.com/MKhiriev/go-member-gate/internal/crypto"
	"github.com/MKhiriev/go-member-gate/internal/handler"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/internal/server"
	"github.com/MKhiriev/go-member-gate/internal/service"
	"github.com/MKhiriev/go-member-gate/internal/store"
	"github.com/MKhiriev/go-member-gate/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("member-gate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, hasher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, hasher, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(storages, cfg.Workers, log)
	background.Run()
	defer background.Stop()

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
