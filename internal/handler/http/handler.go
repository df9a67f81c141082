// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	allowedOrigins  []string
	secureCookies   bool
	sessionDuration time.Duration

	registry *prometheus.Registry
	metrics  *requestMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		secureCookies:   cfg.Server.SecureCookies,
		sessionDuration: cfg.App.SessionDuration,
		registry:        registry,
		metrics:         newRequestMetrics(registry),
		logger:          logger,
	}
}
