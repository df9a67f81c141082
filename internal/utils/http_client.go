// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/go-resty/resty/v2"
)

// ErrUnhealthy is returned by [HTTPClient.Ping] when the server answers
// with anything but a successful "pong".
var ErrUnhealthy = errors.New("server is unhealthy")

const pingPath = "/api/ping"

// HTTPClient wraps a resty client bound to one meal planner server.
// resty keeps a cookie jar per client, so one HTTPClient behaves like a
// single browser session against the API.
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().SetBody(creds).Post("/api/auth/login")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose relative request URLs resolve
// against baseURL. An empty baseURL leaves URLs untouched.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	return &HTTPClient{Client: client}
}

// Ping calls /api/ping and checks for a successful "pong" envelope.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var reply models.Response
	resp, err := c.R().SetContext(ctx).SetResult(&reply).Get(pingPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if resp.StatusCode() != http.StatusOK || !reply.Success || reply.Message != "pong" {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode())
	}
	return nil
}
