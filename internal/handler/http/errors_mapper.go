// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
)

// errorResponse is the client-facing outcome of a known error.
// An empty message means the error text itself is safe to return.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{validators.ErrInvalidInput, http.StatusBadRequest, ""},
	{validators.ErrUnknownField, http.StatusBadRequest, "Unknown field in request"},
	{ErrInvalidBody, http.StatusBadRequest, validators.ReasonInvalidRequestBody},
	{ErrInvalidPathID, http.StatusBadRequest, "Invalid id"},
	{service.ErrDecodingUserRecipe, http.StatusBadRequest, "Stored recipe data is invalid"},

	{ErrNotLoggedIn, http.StatusUnauthorized, "Not logged in"},
	{service.ErrSessionInvalid, http.StatusUnauthorized, "Not logged in"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},

	{ErrAdminRequired, http.StatusForbidden, "Admin privileges required"},
	{service.ErrListNotAccessible, http.StatusForbidden, "List not found or not accessible"},

	{store.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{store.ErrRecipeNotFound, http.StatusNotFound, "Recipe not found"},
	{service.ErrRecipeHasNoIngredients, http.StatusNotFound, "No ingredients found for this recipe"},
	{store.ErrListNotFound, http.StatusNotFound, "List ID not found"},
	{service.ErrFavoritesNotFound, http.StatusNotFound, "Favorites list not found"},
	{store.ErrMealNotFound, http.StatusNotFound, "No meal found for the specified date and meal type"},
	{store.ErrUserRecipeNotFound, http.StatusNotFound, "User recipe not found"},
	{store.ErrImageNotFound, http.StatusNotFound, "Image not found"},
	{store.ErrInvalidImageName, http.StatusNotFound, "Image not found"},

	{store.ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
	{store.ErrMealSlotTaken, http.StatusConflict, "A meal is already scheduled for this user, date, and meal type"},
}

// statusFromError returns the status code and client message for err.
// Unknown errors become 500 with fallback as the message.
func statusFromError(err error, fallback string) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.message != "" {
			return resp.status, resp.message
		}
		var vErr *validators.Error
		if errors.As(err, &vErr) {
			return resp.status, vErr.Reason
		}
		return resp.status, http.StatusText(resp.status)
	}
	return http.StatusInternalServerError, fallback
}

// writeError logs err and writes the failed envelope. The raw error text
// of unknown errors never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := statusFromError(err, fallback)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(fallback)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteJSON(w, models.Fail(message), status)
}

// writeFail writes a failed envelope for checks done by the handler itself.
func writeFail(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.Fail(message), status)
}
