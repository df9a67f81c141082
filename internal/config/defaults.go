// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultSessionIssuer   = "meal-planner"
	DefaultSessionDuration = 24 * time.Hour
	DefaultLogLevel        = "debug"
	DefaultVersion         = "N/A"
	DefaultHTTPAddress     = ":8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultAllowedOrigin   = "http://localhost:5173"
	DefaultImagesDir       = "uploaded_images"
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 5
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   DefaultSessionIssuer,
			SessionDuration: DefaultSessionDuration,
			LogLevel:        DefaultLogLevel,
			Version:         DefaultVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{DefaultAllowedOrigin},
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
			Files: Files{
				ImagesDir: DefaultImagesDir,
			},
		},
	}
}
