// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.Session, models.SessionToken, error) {
			assert.Equal(t, models.Credentials{Username: "ann@example.com", Password: "secret1"}, creds)
			return models.Session{ID: "sid", Admin: true}, models.SessionToken{SignedString: "signed.jwt"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := serve(h, newRequest(http.MethodPost, "/api/auth/login", `{"username":"ann@example.com","password":"secret1"}`, ""))

	require.Equal(t, http.StatusOK, rec.Code)
	body := envelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, true, body["admin"])

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.jwt", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid json",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ReasonInvalidRequestBody,
		},
		{
			name:        "missing fields",
			body:        `{}`,
			err:         &validators.Error{Reason: validators.ReasonCredentialsRequired},
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ReasonCredentialsRequired,
		},
		{
			name:        "wrong password",
			body:        `{"username":"ann@example.com","password":"nope"}`,
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "session store down",
			body:        `{"username":"ann@example.com","password":"secret1"}`,
			err:         fmt.Errorf("%w: redis: connection refused", service.ErrSessionCreationFailed),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Login failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(context.Context, models.Credentials) (models.Session, models.SessionToken, error) {
					return models.Session{}, models.SessionToken{}, tt.err
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rec := serve(h, newRequest(http.MethodPost, "/api/auth/login", tt.body, ""))

			requireFail(t, rec, tt.wantStatus, tt.wantMessage)
			assert.Nil(t, sessionCookie(rec))
		})
	}
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "created", wantStatus: http.StatusCreated, wantMessage: "User created successfully"},
		{name: "duplicate email", err: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict, wantMessage: "Email already exists"},
		{
			name:        "invalid email",
			err:         &validators.Error{Reason: validators.ReasonInvalidEmail},
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ReasonInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				signupFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
					return models.User{UserID: 3, Email: creds.Username}, tt.err
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rec := serve(h, newRequest(http.MethodPost, "/api/auth/signup", `{"username":"ann@example.com","password":"secret1"}`, ""))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, envelope(t, rec)["message"])
		})
	}
}

func TestLogout(t *testing.T) {
	var loggedOut string
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, sessionID string) { loggedOut = sessionID },
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := serve(h, newRequest(http.MethodPost, "/api/auth/logout", "", ""))
	requireFail(t, rec, http.StatusBadRequest, "No user is logged in")

	rec = serve(h, newRequest(http.MethodPost, "/api/auth/logout", "", userToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userIdentity.SessionID, loggedOut)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestWhoAmI(t *testing.T) {
	auth := &mockAuthService{
		whoAmIFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, userIdentity.UserID, userID)
			return models.User{UserID: userID, Username: "ann", Admin: false}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := serve(h, newRequest(http.MethodGet, "/api/auth/whoami", "", ""))
	requireFail(t, rec, http.StatusUnauthorized, "Not logged in")

	rec = serve(h, newRequest(http.MethodGet, "/api/auth/whoami", "", userToken))
	require.Equal(t, http.StatusOK, rec.Code)
	body := envelope(t, rec)
	assert.Equal(t, "ann", body["user"])
	assert.Equal(t, false, body["admin"])
}

func TestUpdateEmail(t *testing.T) {
	auth := &mockAuthService{
		updateEmailFn: func(_ context.Context, userID int64, update models.EmailUpdate) error {
			if update.NewEmail == "taken@example.com" {
				return fmt.Errorf("update email: %w", store.ErrEmailAlreadyExists)
			}
			return nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := serve(h, newRequest(http.MethodPut, "/api/auth/update-email", `{"new_email":"new@example.com"}`, userToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Email updated successfully", envelope(t, rec)["message"])

	rec = serve(h, newRequest(http.MethodPut, "/api/auth/update-email", `{"new_email":"taken@example.com"}`, userToken))
	requireFail(t, rec, http.StatusConflict, "Email already exists")
}

func TestUpdatePassword_UserGone(t *testing.T) {
	auth := &mockAuthService{
		updatePasswordFn: func(context.Context, int64, models.PasswordUpdate) error {
			return store.ErrUserNotFound
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := serve(h, newRequest(http.MethodPut, "/api/auth/update-password", `{"new_password":"longenough"}`, userToken))

	requireFail(t, rec, http.StatusNotFound, "User not found")
}

func TestDeleteAccount(t *testing.T) {
	var deleted models.Identity
	auth := &mockAuthService{
		deleteAccountFn: func(_ context.Context, identity models.Identity) error {
			deleted = identity
			return nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := serve(h, newRequest(http.MethodDelete, "/api/auth/delete-account", "", userToken))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userIdentity, deleted)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}
