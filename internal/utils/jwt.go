// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT that carries a
// session id.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - ID        (jti): the server-side session id
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("meal-planner", sessionID, 24*time.Hour, "secret")
func GenerateSessionToken(issuer, sessionID string, duration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || sessionID == "" || duration == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return models.SessionToken{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ParseSessionToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Session id (jti) claim presence
//
// Example usage:
//
//	token, err := utils.ParseSessionToken(cookie.Value, "secret", "meal-planner")
//	if err != nil {
//	    // handle invalid or expired cookie
//	}
func ParseSessionToken(tokenString, signKey, issuer string) (models.SessionToken, error) {
	parsed := &models.SessionToken{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	if _, err = parsed.GetSessionID(); err != nil {
		return models.SessionToken{}, err
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	return *parsed, nil
}
