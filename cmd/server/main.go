package main

import (
	"context"
	"fmt"

	"github.com/semenovp/go-user-hub/internal/config"
	"github.com/semenovp/go-user-hub/internal/graph"
	myHTTP "github.com/semenovp/go-user-hub/internal/handler/http"
	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/server"
	"github.com/semenovp/go-user-hub/internal/service"
	"github.com/semenovp/go-user-hub/internal/store"
	"github.com/semenovp/go-user-hub/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-hub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.App, log)

	validator := validators.NewUserValidator()
	schema, err := graph.NewSchema(services.UserService, validator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error building graphql schema")
	}

	handler := myHTTP.NewHandler(services, schema, validator, log)

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
