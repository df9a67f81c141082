// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors raised by the transport layer itself. They go through the same
// error writer as domain errors.
var (
	// ErrNotLoggedIn is returned by authenticated routes when the request
	// carries no valid session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrAdminRequired is returned by moderation routes for non-admin callers.
	ErrAdminRequired = errors.New("admin privileges required")

	// ErrInvalidPathID is returned when a numeric path parameter cannot be parsed.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrInvalidBody is returned when a request body is not valid JSON for
	// the route.
	ErrInvalidBody = errors.New("invalid request body")
)
