// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
)

type mealPlanService struct {
	mealPlanRepository store.MealPlanRepository
	recipeRepository   store.RecipeRepository

	logger *logger.Logger
}

func NewMealPlanService(mealPlans store.MealPlanRepository, recipes store.RecipeRepository, logger *logger.Logger) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlans,
		recipeRepository:   recipes,
		logger:             logger,
	}
}

// AddMeal returns store.ErrRecipeNotFound for unknown recipes and
// store.ErrMealSlotTaken when the slot is already scheduled.
func (s *mealPlanService) AddMeal(ctx context.Context, userID int64, request models.MealPlanRequest) error {
	entry, err := validators.ParseMealPlanEntry(request)
	if err != nil {
		return err
	}
	entry.UserID = userID

	exists, err := s.recipeRepository.RecipeExists(ctx, entry.RecipeID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrRecipeNotFound
	}

	return s.mealPlanRepository.AddMeal(ctx, entry)
}

func (s *mealPlanService) GetMealPlan(ctx context.Context, userID int64, mealDate string) ([]models.MealPlanItem, error) {
	var date *time.Time
	if mealDate != "" {
		d, err := validators.ParseMealDate(mealDate)
		if err != nil {
			return nil, err
		}
		date = &d
	}

	return s.mealPlanRepository.GetMealPlan(ctx, userID, date)
}

func (s *mealPlanService) DeleteMeal(ctx context.Context, userID int64, mealDate, mealType string) error {
	slot, err := validators.ParseMealSlot(mealDate, mealType)
	if err != nil {
		return err
	}

	return s.mealPlanRepository.DeleteMeal(ctx, userID, slot)
}
