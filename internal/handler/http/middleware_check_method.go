// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

// methodNotAllowed answers requests whose path exists under a different
// method with 404, so unsupported methods do not reveal the route.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.Fail("Not found"), http.StatusNotFound)
}

// notFound writes the JSON envelope for unknown routes.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.Fail("Not found"), http.StatusNotFound)
}
