// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into v. An empty body is reported as
// [ErrInvalidBody].
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// decodeStrictJSON is decodeJSON that also rejects unknown keys.
func decodeStrictJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return fmt.Errorf("%w: %w", validators.ErrUnknownField, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// readBody returns the raw request body.
func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return data, nil
}

// pathID parses the "id" URL parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

// pageRequest reads page and per_page from the query string. Missing or
// malformed values fall back to the defaults.
func pageRequest(r *http.Request) models.PageRequest {
	query := r.URL.Query()
	return models.NewPageRequest(queryInt(query.Get("page")), queryInt(query.Get("per_page")))
}

func queryInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
