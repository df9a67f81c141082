// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-meal-planner/models"
)

// Field name constants used to restrict Validate to a subset of checks.
const (
	// FieldCredentialsRequired checks that both username and password are set.
	FieldCredentialsRequired = "credentials_required"

	// FieldEmailFormat checks the username against the email pattern.
	FieldEmailFormat = "email_format"

	// FieldCredentialsLength enforces minimum username and password lengths.
	FieldCredentialsLength = "credentials_length"

	// FieldListAnyField requires at least one field of a list request.
	FieldListAnyField = "list_any_field"

	// FieldListRecipeIDs requires a non-empty recipe id set.
	FieldListRecipeIDs = "list_recipe_ids"
)

const (
	minEmailLength    = 3
	minPasswordLength = 6
	maxRecipeRating   = 5
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// RequestValidator implements [Validator] for the request bodies of the
// HTTP API: credentials, email and password changes, recipe list requests
// and admin recipe updates. Value and pointer receivers are both accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - models.Credentials: default fields are required, email format, length (signup)
//   - models.EmailUpdate
//   - models.PasswordUpdate
//   - models.ListRequest: default field is FieldListAnyField
//   - models.RecipeUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.EmailUpdate:
		return v.validateEmailUpdate(value)
	case *models.EmailUpdate:
		return v.validateEmailUpdate(*value)

	case models.PasswordUpdate:
		return v.validatePasswordUpdate(value)
	case *models.PasswordUpdate:
		return v.validatePasswordUpdate(*value)

	case models.ListRequest:
		return v.validateListRequest(value, fields...)
	case *models.ListRequest:
		return v.validateListRequest(*value, fields...)

	case models.RecipeUpdate:
		return v.validateRecipeUpdate(value)
	case *models.RecipeUpdate:
		return v.validateRecipeUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentialsRequired, FieldEmailFormat, FieldCredentialsLength}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentialsRequired:
			if creds.Username == "" || creds.Password == "" {
				return invalid(ReasonCredentialsRequired)
			}
		case FieldEmailFormat:
			if !IsEmail(creds.Username) {
				return invalid(ReasonInvalidEmail)
			}
		case FieldCredentialsLength:
			if len(creds.Username) < minEmailLength || len(creds.Password) < minPasswordLength {
				return invalid(ReasonCredentialsTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEmailUpdate(update models.EmailUpdate) error {
	email := strings.TrimSpace(update.NewEmail)
	if email == "" {
		return invalid(ReasonNewEmailRequired)
	}
	if !IsEmail(email) {
		return invalid("Invalid email format.")
	}
	return nil
}

func (v *RequestValidator) validatePasswordUpdate(update models.PasswordUpdate) error {
	if update.NewPassword == "" {
		return invalid(ReasonNewPasswordRequired)
	}
	if len(update.NewPassword) < minPasswordLength {
		return invalid(ReasonPasswordTooShort)
	}
	return nil
}

func (v *RequestValidator) validateListRequest(request models.ListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldListAnyField}
	}

	for _, f := range fields {
		switch f {
		case FieldListAnyField:
			if request.IsEmpty() {
				return invalid(ReasonNoListFields)
			}
		case FieldListRecipeIDs:
			if request.RecipeIDs == nil || len(*request.RecipeIDs) == 0 {
				return invalid(ReasonNoRecipeIDs)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRecipeUpdate checks each provided field independently.
func (v *RequestValidator) validateRecipeUpdate(update models.RecipeUpdate) error {
	if update.IsEmpty() {
		return invalid(ReasonNoFieldsToUpdate)
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return invalid("Name must not be empty")
	}
	if update.Rating != nil {
		r := *update.Rating
		if math.IsNaN(r) || r < 0 || r > maxRecipeRating {
			return invalid("AggregatedRating must be between 0 and 5")
		}
	}
	if update.ReviewCount != nil && *update.ReviewCount < 0 {
		return invalid("ReviewCount must not be negative")
	}
	if update.DatePublished != nil {
		if _, err := ParseDatePublished(*update.DatePublished); err != nil {
			return err
		}
	}

	return nil
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
