// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:5173"

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{SessionDuration: time.Hour},
		Server: config.Server{
			HTTPAddress:    ":0",
			AllowedOrigins: []string{testOrigin},
		},
	}
}

// newTestHandler builds a Handler around svcs. Auth and app info default to
// mocks so the session middleware and /api/version always work.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, testConfig(), nopLogger())
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}

// newRequest builds a request; a non-empty token is sent as the session cookie.
func newRequest(method, path, body, token string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	return req
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

// serve runs req through the full router of h.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// envelope decodes a JSON response body.
func envelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

// requireFail asserts a failed envelope with status and message.
func requireFail(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	body := envelope(t, rec)
	require.Equal(t, false, body["success"])
	require.Equal(t, message, body["message"])
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}
