// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/handler"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/server"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("company-directory")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Int("default_page_size", cfg.Pagination.DefaultSize).
		Int("max_page_size", cfg.Pagination.MaxSize).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.Admin.Username != "" {
		if _, err = services.UserService.EnsureAdmin(ctx, models.UserInput{
			Email:    cfg.Admin.Email,
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		}); err != nil {
			log.Fatal().Err(err).Msg("error seeding admin account")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
