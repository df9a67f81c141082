// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side record created on login and addressed by the
// id carried in the session cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the authenticated caller resolved for a single request.
// It lives in the request context only.
type Identity struct {
	UserID    int64
	Username  string
	Admin     bool
	SessionID string
}

// Identity returns the request identity described by the session.
func (s Session) Identity() Identity {
	return Identity{
		UserID:    s.UserID,
		Username:  s.Username,
		Admin:     s.Admin,
		SessionID: s.ID,
	}
}
