// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
)

// AuthValidationService validates request bodies before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}
	return v.inner.Signup(ctx, creds)
}

func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.Session, models.SessionToken, error) {
	if err := v.validator.Validate(ctx, creds, validators.FieldCredentialsRequired); err != nil {
		return models.Session{}, models.SessionToken{}, err
	}
	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) Logout(ctx context.Context, sessionID string) {
	v.inner.Logout(ctx, sessionID)
}

func (v *AuthValidationService) ResolveSession(ctx context.Context, tokenString string) (models.Identity, error) {
	return v.inner.ResolveSession(ctx, tokenString)
}

func (v *AuthValidationService) WhoAmI(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.WhoAmI(ctx, userID)
}

func (v *AuthValidationService) UpdateEmail(ctx context.Context, userID int64, update models.EmailUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return err
	}
	return v.inner.UpdateEmail(ctx, userID, update)
}

func (v *AuthValidationService) UpdatePassword(ctx context.Context, userID int64, update models.PasswordUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return err
	}
	return v.inner.UpdatePassword(ctx, userID, update)
}

func (v *AuthValidationService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	return v.inner.DeleteAccount(ctx, identity)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
