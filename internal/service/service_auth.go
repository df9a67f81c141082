// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/crypto"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

// IDGenerator produces unique string ids.
type IDGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// Accounts live in the UserRepository, sessions in the SessionStore; the
// cookie only carries a signed session id.
type authService struct {
	userRepository store.UserRepository
	sessionStore   store.SessionStore
	hasher         crypto.PasswordHasher
	ids            IDGenerator

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every session token.
	sessionIssuer string

	// sessionDuration bounds both the token expiry and the session record TTL.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with session
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, sessions store.SessionStore, hasher crypto.PasswordHasher, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  users,
		sessionStore:    sessions,
		hasher:          hasher,
		ids:             ids,
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// Signup creates a new account whose display name is the local part of the
// email. A duplicate email surfaces as store.ErrEmailAlreadyExists.
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	username, _, _ := strings.Cut(creds.Username, "@")
	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        creds.Username,
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Signup").Int64("user_id", user.UserID).Msg("user signed up")
	return user, nil
}

// Login authenticates an existing user and opens a session.
//
// Returns ErrInvalidCredentials for an unknown email or a wrong password.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, models.SessionToken, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, creds.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Session{}, models.SessionToken{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Session{}, models.SessionToken{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("stored password hash is unreadable")
		return models.Session{}, models.SessionToken{}, ErrInvalidCredentials
	}
	if !ok {
		log.Debug().Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("wrong password")
		return models.Session{}, models.SessionToken{}, ErrInvalidCredentials
	}

	session := models.Session{
		ID:        a.ids.Generate(),
		UserID:    user.UserID,
		Username:  user.Username,
		Admin:     user.Admin,
		CreatedAt: time.Now().UTC(),
	}

	token, err := utils.GenerateSessionToken(a.sessionIssuer, session.ID, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Session{}, models.SessionToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	if err = a.sessionStore.CreateSession(ctx, session, a.sessionDuration); err != nil {
		return models.Session{}, models.SessionToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, token, nil
}

func (a *authService) Logout(ctx context.Context, sessionID string) {
	if err := a.sessionStore.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Msg("session record was not deleted")
	}
}

// ResolveSession validates the cookie token and loads its session record.
// Any token or lookup miss is normalised to ErrSessionInvalid.
func (a *authService) ResolveSession(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := utils.ParseSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		return models.Identity{}, ErrSessionInvalid
	}

	sessionID, err := token.GetSessionID()
	if err != nil {
		return models.Identity{}, ErrSessionInvalid
	}

	session, err := a.sessionStore.GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Identity{}, ErrSessionInvalid
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("session lookup failed: %w", err)
	}

	return session.Identity(), nil
}

func (a *authService) WhoAmI(ctx context.Context, userID int64) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, userID)
}

func (a *authService) UpdateEmail(ctx context.Context, userID int64, update models.EmailUpdate) error {
	return a.userRepository.UpdateEmail(ctx, userID, strings.TrimSpace(update.NewEmail))
}

func (a *authService) UpdatePassword(ctx context.Context, userID int64, update models.PasswordUpdate) error {
	hash, err := a.hasher.Hash(update.NewPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	return a.userRepository.UpdatePassword(ctx, userID, hash)
}

func (a *authService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	if err := a.userRepository.DeleteUser(ctx, identity.UserID); err != nil {
		return err
	}

	a.Logout(ctx, identity.SessionID)
	logger.FromContext(ctx).Info().Str("func", "*authService.DeleteAccount").Int64("user_id", identity.UserID).Msg("account deleted")
	return nil
}
