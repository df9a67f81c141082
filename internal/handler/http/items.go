// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

// itemHandlers serves the identical pantry and grocery routes on top of one
// [service.ItemService].
type itemHandlers struct {
	items service.ItemService
	label string // lower-case collection name used in messages
	title string
}

func (i itemHandlers) getItems(w http.ResponseWriter, r *http.Request) {
	items, err := i.items.GetItems(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch "+i.label+" items")
		return
	}

	utils.WriteJSON(w, models.ItemsResponse{Response: models.OK(""), Items: items}, http.StatusOK)
}

func (i itemHandlers) updateItems(w http.ResponseWriter, r *http.Request) {
	var update models.ItemsUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "")
		return
	}

	written, err := i.items.UpdateItems(r.Context(), identity(r).UserID, update)
	if err != nil {
		writeError(w, r, err, "Failed to update "+i.label+" items")
		return
	}

	if !written {
		utils.WriteJSON(w, models.OK("No nonzero items to add"), http.StatusOK)
		return
	}
	utils.WriteJSON(w, models.OK(i.title+" items updated successfully"), http.StatusOK)
}
