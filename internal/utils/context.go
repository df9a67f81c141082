// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, session token
// generation and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-meal-planner/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the session middleware stores the
// caller's [models.Identity]. The value exists only for the lifetime of one
// request.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the caller identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true: the request carries a valid session
//   - ok == false: anonymous request, or a value of an unexpected type
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(ctx)
//	if !ok {
//	    // anonymous caller
//	}
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
