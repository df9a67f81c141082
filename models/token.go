// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var errEmptySessionID = errors.New("session id claim is empty")

// SessionToken wraps the signed value of the session cookie.
//
// It embeds [jwt.RegisteredClaims]; the "jti" claim carries the id of the
// server-side [Session] record.
type SessionToken struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation placed in the cookie.
	SignedString string `json:"-"`
}

// GetSessionID returns the session id stored in the "jti" claim.
func (t *SessionToken) GetSessionID() (string, error) {
	if t.ID == "" {
		return "", errEmptySessionID
	}

	return t.ID, nil
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
