// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

func (h *Handler) listIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.services.ListService.ListIDs(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch lists")
		return
	}

	utils.WriteJSON(w, models.ListIDsResponse{Response: models.OK(""), ListIDs: ids}, http.StatusOK)
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	var request models.ListRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, "")
		return
	}

	list, err := h.services.ListService.CreateList(r.Context(), identity(r).UserID, request)
	if err != nil {
		writeError(w, r, err, "Failed to create list")
		return
	}

	utils.WriteJSON(w, models.ListResponse{Response: models.OK("List created successfully"), List: list}, http.StatusCreated)
}

func (h *Handler) updateList(w http.ResponseWriter, r *http.Request) {
	listID, request, ok := listRequest(w, r)
	if !ok {
		return
	}

	list, err := h.services.ListService.UpdateList(r.Context(), identity(r).UserID, listID, request)
	if err != nil {
		writeError(w, r, err, "Failed to update list")
		return
	}

	utils.WriteJSON(w, models.ListResponse{Response: models.OK("List updated successfully"), List: list}, http.StatusOK)
}

func (h *Handler) removeListRecipes(w http.ResponseWriter, r *http.Request) {
	listID, request, ok := listRequest(w, r)
	if !ok {
		return
	}

	list, err := h.services.ListService.RemoveRecipes(r.Context(), identity(r).UserID, listID, request)
	if err != nil {
		writeError(w, r, err, "Failed to remove recipes from list")
		return
	}

	utils.WriteJSON(w, models.ListResponse{Response: models.OK("Recipes removed successfully"), List: list}, http.StatusOK)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if err = h.services.ListService.DeleteList(r.Context(), identity(r).UserID, listID); err != nil {
		writeError(w, r, err, "Failed to delete list")
		return
	}

	utils.WriteJSON(w, models.OK("List deleted successfully"), http.StatusOK)
}

func (h *Handler) getList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	list, err := h.services.ListService.GetList(r.Context(), listID, optionalIdentity(r))
	if err != nil {
		writeError(w, r, err, "Failed to fetch list")
		return
	}

	utils.WriteJSON(w, models.ListResponse{Response: models.OK(""), List: list}, http.StatusOK)
}

func (h *Handler) generateFavorites(w http.ResponseWriter, r *http.Request) {
	list, created, err := h.services.ListService.GenerateFavorites(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, r, err, "Failed to generate favorites list")
		return
	}

	if !created {
		utils.WriteJSON(w, models.ListResponse{Response: models.OK("Favorites list already exists"), List: list}, http.StatusOK)
		return
	}
	utils.WriteJSON(w, models.ListResponse{Response: models.OK("Favorites list created"), List: list}, http.StatusCreated)
}

func (h *Handler) favorites(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.ListService.Favorites(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch favorites list")
		return
	}

	utils.WriteJSON(w, models.ListResponse{Response: models.OK(""), List: list}, http.StatusOK)
}

func (h *Handler) searchPublicLists(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	page, err := h.services.ListService.SearchPublic(r.Context(), query, pageRequest(r))
	if err != nil {
		writeError(w, r, err, "Failed to search lists")
		return
	}

	utils.WriteJSON(w, models.ListPageResponse{
		Response:   models.OK(""),
		Lists:      page.Items,
		Query:      query,
		Pagination: page.Pagination,
	}, http.StatusOK)
}

// listRequest reads the list id and body shared by the update routes. It
// writes the error response itself and reports false on failure.
func listRequest(w http.ResponseWriter, r *http.Request) (int64, models.ListRequest, bool) {
	listID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return 0, models.ListRequest{}, false
	}

	var request models.ListRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err, "")
		return 0, models.ListRequest{}, false
	}

	return listID, request, true
}
