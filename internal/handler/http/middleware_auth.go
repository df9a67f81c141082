// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

// sessionCookieName is the cookie holding the signed session token.
const sessionCookieName = "session"

// withSession resolves the session cookie, when present, into a
// [models.Identity] stored in the request context. Requests without a cookie
// or with an expired or forged one pass through anonymously; routes that need
// a caller are guarded by requireAuth. Any other lookup failure is a 500.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ResolveSession(ctx, cookie.Value)
		if errors.Is(err, service.ErrSessionInvalid) {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid session cookie")
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			writeError(w, r, err, "Failed to resolve session")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// requireAuth rejects anonymous requests with 401.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.IdentityFromContext(r.Context()); !ok {
			writeError(w, r, ErrNotLoggedIn, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin rejects anonymous requests with 401 and non-admin callers
// with 403.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNotLoggedIn, "")
			return
		}
		if !identity.Admin {
			writeError(w, r, ErrAdminRequired, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// identity returns the caller resolved by withSession. Routes behind
// requireAuth always have one.
func identity(r *http.Request) models.Identity {
	id, _ := utils.IdentityFromContext(r.Context())
	return id
}

// optionalIdentity returns nil for anonymous callers.
func optionalIdentity(r *http.Request) *models.Identity {
	id, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		return nil
	}
	return &id
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.SessionToken) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.sessionDuration / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
