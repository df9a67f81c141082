// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update violates the
	// unique constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user row matches the given id or email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrRecipeNotFound is returned when no catalog recipe matches the given id.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrListNotFound is returned when no recipe list matches the given id
	// (and owner, where the lookup is owner-scoped).
	ErrListNotFound = errors.New("recipe list was not found")

	// ErrItemsNotFound is returned when a user has no pantry or grocery row yet.
	ErrItemsNotFound = errors.New("items row was not found")

	// ErrMealSlotTaken is returned when a (user, date, meal type) slot is
	// already scheduled.
	ErrMealSlotTaken = errors.New("meal slot is already taken")

	// ErrMealNotFound is returned when a delete targets an empty meal slot.
	ErrMealNotFound = errors.New("meal was not found")

	// ErrUserRecipeNotFound is returned when no user-made recipe matches the
	// given id (and owner, where the lookup is owner-scoped).
	ErrUserRecipeNotFound = errors.New("user recipe was not found")

	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrImageNotFound is returned when a requested image file does not exist.
	ErrImageNotFound = errors.New("image was not found")

	// ErrInvalidImageName is returned when an image name would escape the
	// images directory.
	ErrInvalidImageName = errors.New("invalid image name")
)

// Low-level operation errors. These are wrapped together with the driver
// error by repository methods when an operation fails before any domain
// logic can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingJSON         = errors.New("failed to encode json column")
	ErrDecodingJSON         = errors.New("failed to decode json column")
	ErrSessionStore         = errors.New("session store error")
	ErrImageStore           = errors.New("image store error")
)
