// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every validation failure produced by this package.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Error is a validation failure. Reason is safe to show to the client.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// Is makes every *Error match [ErrInvalidInput].
func (e *Error) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(reason string) error {
	return &Error{Reason: reason}
}

func invalidf(format string, args ...any) error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// Reasons shared with callers that build their own checks.
const (
	ReasonCredentialsRequired = "Username and password are required"
	ReasonInvalidEmail        = "Invalid email format. Please use a valid email address."
	ReasonCredentialsTooShort = "Username must be at least 3 characters long and password must be at least 6 characters long."
	ReasonNewEmailRequired    = "New email is required"
	ReasonNewPasswordRequired = "New password is required"
	ReasonPasswordTooShort    = "Password must be at least 6 characters long"

	ReasonNoItems         = "No items provided"
	ReasonInvalidItemName = "Invalid item name"

	ReasonNoListFields   = "No recipe IDs, title, or public status provided for update"
	ReasonNoRecipeIDs    = "No recipe IDs provided"
	ReasonInvalidListIDs = "recipe_ids must be a list or single integer"

	ReasonMissingMealFields  = "Missing required fields: mealDate, mealType, recipeId"
	ReasonMissingSlotFields  = "Missing required query parameters: mealDate and mealType"
	ReasonInvalidMealType    = "Invalid mealType"
	ReasonInvalidMealDate    = "Invalid date format. Use YYYY-MM-DD"
	ReasonInvalidMealRecipe  = "Invalid recipeId. Must be a positive number"
	ReasonNoFieldsToUpdate   = "No fields provided to update"
	ReasonNoRecipeData       = "No recipe data provided"
	ReasonNoFile             = "No file provided"
	ReasonNoFileSelected     = "No file selected"
	ReasonUnsupportedImage   = "Unsupported image type. Allowed: png, jpg, jpeg, gif"
	ReasonSearchRequired     = "Search query is required"
	ReasonCategoryRequired   = "Category name is required"
	ReasonInvalidRequestBody = "Invalid JSON"
)
