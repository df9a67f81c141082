// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureIdentity records the identity seen by the next handler.
func captureIdentity(seen **models.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := utils.IdentityFromContext(r.Context()); ok {
			*seen = &id
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestWithSession(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		want   *models.Identity
	}{
		{name: "no cookie"},
		{name: "unknown token", cookie: "garbage"},
		{name: "user token", cookie: userToken, want: &userIdentity},
		{name: "admin token", cookie: adminToken, want: &adminIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{})

			var seen *models.Identity
			rec := httptest.NewRecorder()
			h.withSession(captureIdentity(&seen)).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", tt.cookie))

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, seen)
		})
	}
}

func TestWithSession_ResolveError(t *testing.T) {
	auth := &mockAuthService{
		resolveSessionFn: func(context.Context, string) (models.Identity, error) {
			return models.Identity{}, service.ErrSessionInvalid
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	var seen *models.Identity
	rec := httptest.NewRecorder()
	h.withSession(captureIdentity(&seen)).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", "expired"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, seen)
}

func TestWithSession_StoreFailure(t *testing.T) {
	auth := &mockAuthService{
		resolveSessionFn: func(context.Context, string) (models.Identity, error) {
			return models.Identity{}, fmt.Errorf("session lookup failed: %w", store.ErrSessionStore)
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	var seen *models.Identity
	rec := httptest.NewRecorder()
	h.withSession(captureIdentity(&seen)).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", userToken))

	requireFail(t, rec, http.StatusInternalServerError, "Failed to resolve session")
	assert.Nil(t, seen)
	assert.NotContains(t, rec.Body.String(), "session lookup failed")
}

func TestRequireAuthAndAdmin(t *testing.T) {
	tests := []struct {
		name        string
		guard       func(h *Handler) func(http.Handler) http.Handler
		identity    *models.Identity
		wantStatus  int
		wantMessage string
	}{
		{name: "auth anonymous", guard: func(h *Handler) func(http.Handler) http.Handler { return h.requireAuth }, wantStatus: http.StatusUnauthorized, wantMessage: "Not logged in"},
		{name: "auth user", guard: func(h *Handler) func(http.Handler) http.Handler { return h.requireAuth }, identity: &userIdentity, wantStatus: http.StatusNoContent},
		{name: "admin anonymous", guard: func(h *Handler) func(http.Handler) http.Handler { return h.requireAdmin }, wantStatus: http.StatusUnauthorized, wantMessage: "Not logged in"},
		{name: "admin user", guard: func(h *Handler) func(http.Handler) http.Handler { return h.requireAdmin }, identity: &userIdentity, wantStatus: http.StatusForbidden, wantMessage: "Admin privileges required"},
		{name: "admin admin", guard: func(h *Handler) func(http.Handler) http.Handler { return h.requireAdmin }, identity: &adminIdentity, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{})
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

			req := newRequest(http.MethodGet, "/", "", "")
			if tt.identity != nil {
				req = req.WithContext(utils.WithIdentity(req.Context(), *tt.identity))
			}
			rec := httptest.NewRecorder()
			tt.guard(h)(next).ServeHTTP(rec, req)

			if tt.wantMessage == "" {
				assert.Equal(t, tt.wantStatus, rec.Code)
				return
			}
			requireFail(t, rec, tt.wantStatus, tt.wantMessage)
		})
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	cfg := testConfig()
	cfg.Server.SecureCookies = true
	h := NewHandler(&service.Services{}, cfg, nopLogger())

	rec := httptest.NewRecorder()
	h.setSessionCookie(rec, models.SessionToken{SignedString: "v"})

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}
