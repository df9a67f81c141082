// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/handler"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/server"
	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("meal-planner-server")
	log.Info().
		Str("build_version", buildInfo.Version).
		Str("build_date", buildInfo.Date).
		Str("build_commit", buildInfo.Commit).
		Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == config.DefaultVersion && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.Version
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Str("version", cfg.App.Version).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	seed := uint64(time.Now().UnixNano())
	rnd := rand.New(rand.NewPCG(seed, seed>>1|1))

	services, err := service.NewServices(storages, *cfg, rnd, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
