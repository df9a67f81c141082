// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
)

const msgLoginToTrackPantry = "Login to track pantry items"

func (h *Handler) browseRecipes(w http.ResponseWriter, r *http.Request) {
	h.searchRecipes(w, r, models.RecipeSearch{Scope: models.SearchAll}, "", "")
}

// searchRecipesBy returns a handler for a query-string search over scope.
// param names the query parameter carrying the search text.
func (h *Handler) searchRecipesBy(scope models.SearchScope, param, reason string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := validators.RequireQuery(r.URL.Query().Get(param), reason)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		search := models.RecipeSearch{Query: query, Scope: scope}
		if scope == models.SearchByCategory {
			h.searchRecipes(w, r, search, "", query)
			return
		}
		h.searchRecipes(w, r, search, query, "")
	}
}

func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request, search models.RecipeSearch, query, category string) {
	page, err := h.services.RecipeService.Search(r.Context(), search, pageRequest(r))
	if err != nil {
		writeError(w, r, err, "Failed to fetch recipes")
		return
	}

	utils.WriteJSON(w, models.RecipePageResponse{
		Response:   models.OK(""),
		Recipes:    page.Items,
		Query:      query,
		Category:   category,
		Pagination: page.Pagination,
	}, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), recipeID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch recipe")
		return
	}

	utils.WriteJSON(w, models.RecipeResponse{Response: models.OK(""), Recipe: recipe}, http.StatusOK)
}

func (h *Handler) randomRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.RecipeService.Random(r.Context(), queryInt(r.URL.Query().Get("count")))
	if err != nil {
		writeError(w, r, err, "Failed to fetch random recipes")
		return
	}

	utils.WriteJSON(w, models.RecipeListResponse{Response: models.OK(""), Recipes: recipes}, http.StatusOK)
}

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.RecommendationService.Recommend(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch recommendations")
		return
	}

	utils.WriteJSON(w, models.RecommendationsResponse{
		Response:    models.OK(result.Message),
		Recipes:     result.Recipes,
		PantryItems: result.PantryItems,
	}, http.StatusOK)
}

func (h *Handler) missingIngredients(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	result, err := h.services.RecommendationService.MissingIngredients(r.Context(), recipeID, optionalIdentity(r))
	if err != nil {
		writeError(w, r, err, "Failed to compare ingredients")
		return
	}

	message := ""
	if !result.Authenticated {
		message = msgLoginToTrackPantry
	}
	utils.WriteJSON(w, models.MissingIngredientsResponse{
		Response:    models.OK(message),
		Missing:     result.Missing,
		PantryItems: result.InPantry,
		Recipe:      result.All,
	}, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	var update models.RecipeUpdate
	if err = decodeStrictJSON(r, &update); err != nil {
		writeError(w, r, err, "")
		return
	}

	if err = h.services.RecipeService.UpdateRecipe(r.Context(), recipeID, update); err != nil {
		writeError(w, r, err, "Failed to update recipe")
		return
	}

	utils.WriteJSON(w, models.OK("Recipe updated successfully"), http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(r.Context(), recipeID); err != nil {
		writeError(w, r, err, "Failed to delete recipe")
		return
	}

	utils.WriteJSON(w, models.OK("Recipe deleted successfully"), http.StatusOK)
}

// searchIngredients serves the pantry ingredient autocomplete.
func (h *Handler) searchIngredients(w http.ResponseWriter, r *http.Request) {
	query, err := validators.RequireQuery(r.URL.Query().Get("q"), validators.ReasonSearchRequired)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	result, err := h.services.RecipeService.SearchIngredients(r.Context(), query, pageRequest(r))
	if err != nil {
		writeError(w, r, err, "Failed to search ingredients")
		return
	}

	utils.WriteJSON(w, models.IngredientSearchResponse{
		Response:    models.OK(""),
		Ingredients: result.Ingredients,
		Query:       query,
		Pagination:  result.Pagination,
	}, http.StatusOK)
}
