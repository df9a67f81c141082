// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the meal planner.
//
// It wires the chi router, request handlers per route group and the
// middleware chain: panic recovery, CORS, request tracing, access logging,
// request metrics and cookie session resolution. All failures leave the
// package through a single error writer that maps domain errors to status
// codes and JSON envelopes.
package http
