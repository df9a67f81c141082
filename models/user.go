// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Username is the display name shown in UI. Defaults to the local part
	// of Email at signup.
	Username string `json:"username"`

	// PasswordHash stores the argon2id-encoded password. Never plaintext.
	PasswordHash string `json:"-"`

	// ProfileImage is an optional avatar URL.
	ProfileImage *string `json:"profile_image,omitempty"`

	// Admin grants access to catalog moderation routes.
	Admin bool `json:"admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body of login and signup.
// Username carries the email address.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EmailUpdate is the request body of the email change route.
type EmailUpdate struct {
	NewEmail string `json:"new_email"`
}

// PasswordUpdate is the request body of the password change route.
type PasswordUpdate struct {
	NewPassword string `json:"new_password"`
}
