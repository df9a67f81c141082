// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionInvalid is returned when a session cookie is malformed,
	// expired or points at a missing session record.
	ErrSessionInvalid = errors.New("session is expired or invalid")

	ErrSessionCreationFailed = errors.New("session creation failed")

	// ErrListNotAccessible is returned when a private list is requested by
	// someone other than its owner.
	ErrListNotAccessible = errors.New("list is not accessible")

	ErrFavoritesNotFound = errors.New("favorites list was not found")

	// ErrRecipeHasNoIngredients is returned by the missing-ingredients lookup
	// for recipes without ingredient parts.
	ErrRecipeHasNoIngredients = errors.New("recipe has no ingredients")

	ErrDecodingUserRecipe = errors.New("failed to decode user recipe document")
)
