// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
)

// appInfoService serves the version string reported by /api/version.
type appInfoService struct {
	version string
}

// NewAppInfoService fails with [ErrVersionIsNotSpecified] when cfg carries
// no version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("app info service created")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
