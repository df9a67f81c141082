// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler bundles the transport handlers of the application.
package handler

import (
	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/handler/http"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
