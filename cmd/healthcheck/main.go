// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command healthcheck exits non-zero unless the meal planner server answers
// /api/ping. It is meant for container HEALTHCHECK directives.
//
//	healthcheck -url http://localhost:8080
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/utils"
)

func main() {
	url := flag.String("url", "http://localhost:8080", "Server base URL")
	timeout := flag.Duration("timeout", 5*time.Second, "Overall timeout")
	flag.Parse()

	log := logger.NewLogger("meal-planner-healthcheck")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := utils.NewHTTPClient(*url).Ping(ctx); err != nil {
		log.Error().Err(err).Str("url", *url).Msg("health check failed")
		cancel()
		os.Exit(1)
	}
	log.Debug().Str("url", *url).Msg("server is healthy")
}
