// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

func (h *Handler) listUserRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.UserRecipeService.ListUserRecipes(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch user recipes")
		return
	}

	utils.WriteJSON(w, models.UserRecipesResponse{Response: models.OK(""), Recipes: recipes}, http.StatusOK)
}

func (h *Handler) getUserRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	recipe, err := h.services.UserRecipeService.GetUserRecipe(r.Context(), id, identity(r).UserID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch user recipe")
		return
	}

	utils.WriteJSON(w, models.UserRecipeResponse{Response: models.OK(""), Recipe: recipe}, http.StatusOK)
}

func (h *Handler) createUserRecipe(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	id, err := h.services.UserRecipeService.CreateUserRecipe(r.Context(), identity(r).UserID, data)
	if err != nil {
		writeError(w, r, err, "Failed to create user recipe")
		return
	}

	utils.WriteJSON(w, models.UserRecipeIDResponse{Response: models.OK("Recipe created successfully"), ID: id}, http.StatusCreated)
}

func (h *Handler) updateUserRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	data, err := readBody(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if err = h.services.UserRecipeService.UpdateUserRecipe(r.Context(), id, identity(r).UserID, data); err != nil {
		writeError(w, r, err, "Failed to update user recipe")
		return
	}

	utils.WriteJSON(w, models.OK("Recipe updated successfully"), http.StatusOK)
}

func (h *Handler) deleteUserRecipe(w http.ResponseWriter, r *http.Request) {
	h.userRecipeAction(w, r, h.services.UserRecipeService.DeleteUserRecipe, "Recipe deleted successfully", "Failed to delete user recipe")
}

func (h *Handler) submitUserRecipe(w http.ResponseWriter, r *http.Request) {
	h.userRecipeAction(w, r, h.services.UserRecipeService.Submit, "Recipe submitted successfully", "Failed to submit user recipe")
}

func (h *Handler) unsubmitUserRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if err = h.services.UserRecipeService.Unsubmit(r.Context(), id, identity(r)); err != nil {
		writeError(w, r, err, "Failed to unsubmit user recipe")
		return
	}

	utils.WriteJSON(w, models.OK("Recipe unsubmitted successfully"), http.StatusOK)
}

func (h *Handler) listSubmittedRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.UserRecipeService.ListSubmitted(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch submitted recipes")
		return
	}

	utils.WriteJSON(w, models.UserRecipesResponse{Response: models.OK(""), Recipes: recipes}, http.StatusOK)
}

func (h *Handler) approveUserRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	recipeID, err := h.services.UserRecipeService.Approve(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to approve recipe")
		return
	}

	utils.WriteJSON(w, models.ApprovedRecipeResponse{Response: models.OK("Recipe approved successfully"), RecipeID: recipeID}, http.StatusOK)
}

// userRecipeAction runs an owner-scoped action on the document in the path.
func (h *Handler) userRecipeAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, id, userID int64) error,
	success, fallback string,
) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if err = action(r.Context(), id, identity(r).UserID); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, models.OK(success), http.StatusOK)
}
