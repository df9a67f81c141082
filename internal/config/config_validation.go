// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] carries every
// value the server cannot start without.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Redis.Address == "" {
		return fmt.Errorf("%w: redis address is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.ImagesDir == "" {
		return fmt.Errorf("%w: images directory is empty", ErrInvalidStorageConfigs)
	}

	if cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: session sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.SessionDuration <= 0 {
		return fmt.Errorf("%w: session duration must be positive", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}
