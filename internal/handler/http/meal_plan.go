// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

func (h *Handler) addMeal(w http.ResponseWriter, r *http.Request) {
	var request models.MealPlanRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err, "")
		return
	}

	if err := h.services.MealPlanService.AddMeal(r.Context(), identity(r).UserID, request); err != nil {
		writeError(w, r, err, "Failed to add meal")
		return
	}

	utils.WriteJSON(w, models.OK("Meal added successfully"), http.StatusCreated)
}

func (h *Handler) getMealPlan(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.MealPlanService.GetMealPlan(r.Context(), identity(r).UserID, r.URL.Query().Get("mealDate"))
	if err != nil {
		writeError(w, r, err, "Failed to fetch meal plan")
		return
	}

	utils.WriteJSON(w, models.MealPlanResponse{Response: models.OK(""), MealPlan: items}, http.StatusOK)
}

// deleteMeal takes the slot from the query string, or from a JSON body when
// the query is empty.
func (h *Handler) deleteMeal(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	slot := models.MealPlanRequest{MealDate: query.Get("mealDate"), MealType: query.Get("mealType")}
	if slot.MealDate == "" && slot.MealType == "" && r.ContentLength > 0 {
		if err := decodeJSON(r, &slot); err != nil {
			writeError(w, r, err, "")
			return
		}
	}

	if err := h.services.MealPlanService.DeleteMeal(r.Context(), identity(r).UserID, slot.MealDate, slot.MealType); err != nil {
		writeError(w, r, err, "Failed to delete meal")
		return
	}

	utils.WriteJSON(w, models.OK("Meal deleted successfully"), http.StatusOK)
}
