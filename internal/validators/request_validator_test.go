// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func reasonOf(t *testing.T, err error) string {
	t.Helper()
	var vErr *Error
	require.True(t, errors.As(err, &vErr), "expected *validators.Error, got %T (%v)", err, err)
	require.ErrorIs(t, err, ErrInvalidInput)
	return vErr.Reason
}

func TestRequestValidator_Credentials(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		creds  models.Credentials
		fields []string
		reason string
	}{
		{name: "valid signup", creds: models.Credentials{Username: "ann@example.com", Password: "secret1"}},
		{name: "missing password", creds: models.Credentials{Username: "ann@example.com"}, reason: ReasonCredentialsRequired},
		{name: "missing username", creds: models.Credentials{Password: "secret1"}, reason: ReasonCredentialsRequired},
		{name: "bad email", creds: models.Credentials{Username: "ann", Password: "secret1"}, reason: ReasonInvalidEmail},
		{name: "short password", creds: models.Credentials{Username: "ann@example.com", Password: "123"}, reason: ReasonCredentialsTooShort},
		{name: "login checks presence only", creds: models.Credentials{Username: "ann", Password: "1"}, fields: []string{FieldCredentialsRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.reason, reasonOf(t, err))
		})
	}
}

func TestRequestValidator_PointerAndUnknown(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	err := v.Validate(ctx, &models.Credentials{Username: "ann@example.com", Password: "secret1"})
	assert.NoError(t, err)

	err = v.Validate(ctx, models.Credentials{}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)

	err = v.Validate(ctx, 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestRequestValidator_EmailAndPasswordUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.Equal(t, ReasonNewEmailRequired, reasonOf(t, v.Validate(ctx, models.EmailUpdate{NewEmail: "  "})))
	assert.Equal(t, "Invalid email format.", reasonOf(t, v.Validate(ctx, models.EmailUpdate{NewEmail: "nope@"})))
	assert.NoError(t, v.Validate(ctx, &models.EmailUpdate{NewEmail: "new@example.org"}))

	assert.Equal(t, ReasonNewPasswordRequired, reasonOf(t, v.Validate(ctx, models.PasswordUpdate{})))
	assert.Equal(t, ReasonPasswordTooShort, reasonOf(t, v.Validate(ctx, models.PasswordUpdate{NewPassword: "12345"})))
	assert.NoError(t, v.Validate(ctx, models.PasswordUpdate{NewPassword: "123456"}))
}

func TestRequestValidator_ListRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.Equal(t, ReasonNoListFields, reasonOf(t, v.Validate(ctx, models.ListRequest{})))
	assert.NoError(t, v.Validate(ctx, models.ListRequest{Title: strPtr("Dinner")}))

	empty := models.IDList{}
	assert.Equal(t, ReasonNoRecipeIDs, reasonOf(t, v.Validate(ctx, models.ListRequest{RecipeIDs: &empty}, FieldListRecipeIDs)))
	assert.Equal(t, ReasonNoRecipeIDs, reasonOf(t, v.Validate(ctx, models.ListRequest{Title: strPtr("x")}, FieldListRecipeIDs)))

	ids := models.IDList{1}
	assert.NoError(t, v.Validate(ctx, &models.ListRequest{RecipeIDs: &ids}, FieldListRecipeIDs))
}

func TestRequestValidator_RecipeUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	rating := func(f float64) *float64 { return &f }
	count := func(n int64) *int64 { return &n }

	tests := []struct {
		name    string
		update  models.RecipeUpdate
		wantErr string
	}{
		{name: "empty", update: models.RecipeUpdate{}, wantErr: ReasonNoFieldsToUpdate},
		{name: "blank name", update: models.RecipeUpdate{Name: strPtr(" ")}, wantErr: "Name must not be empty"},
		{name: "rating too high", update: models.RecipeUpdate{Rating: rating(5.5)}, wantErr: "AggregatedRating must be between 0 and 5"},
		{name: "rating negative", update: models.RecipeUpdate{Rating: rating(-1)}, wantErr: "AggregatedRating must be between 0 and 5"},
		{name: "rating NaN", update: models.RecipeUpdate{Rating: rating(math.NaN())}, wantErr: "AggregatedRating must be between 0 and 5"},
		{name: "negative reviews", update: models.RecipeUpdate{ReviewCount: count(-3)}, wantErr: "ReviewCount must not be negative"},
		{name: "bad date", update: models.RecipeUpdate{DatePublished: strPtr("yesterday")}, wantErr: "DatePublished must be RFC 3339 or YYYY-MM-DD"},
		{name: "valid mix", update: models.RecipeUpdate{Name: strPtr("Soup"), Rating: rating(4.5), ReviewCount: count(0), DatePublished: strPtr("2020-01-02")}},
		{name: "rfc3339 date", update: models.RecipeUpdate{DatePublished: strPtr("2020-01-02T10:00:00Z")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.update)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, reasonOf(t, err))
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a.b+c@sub.example.co"))
	assert.False(t, IsEmail("a@b"))
	assert.False(t, IsEmail("@example.com"))
	assert.False(t, IsEmail("a b@example.com"))
}
