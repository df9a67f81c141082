// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
)

const (
	DefaultRandomCount = 10
	MaxRandomCount     = 50
)

type recipeService struct {
	recipeRepository store.RecipeRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewRecipeService(recipes store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipes,
		validator:        validators.NewRequestValidator(),
		logger:           logger,
	}
}

func (s *recipeService) Search(ctx context.Context, search models.RecipeSearch, page models.PageRequest) (models.Page[models.RecipeSummary], error) {
	recipes, total, err := s.recipeRepository.SearchRecipes(ctx, search, page)
	if err != nil {
		return models.Page[models.RecipeSummary]{}, fmt.Errorf("recipe search failed: %w", err)
	}

	return models.Page[models.RecipeSummary]{
		Items:      summarize(recipes),
		Pagination: models.NewPagination(page, total),
	}, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	return s.recipeRepository.GetRecipe(ctx, recipeID)
}

// Random samples count recipes; count falls back to DefaultRandomCount and
// is capped at MaxRandomCount.
func (s *recipeService) Random(ctx context.Context, count int) ([]models.RecipeSummary, error) {
	if count < 1 {
		count = DefaultRandomCount
	}
	count = min(count, MaxRandomCount)

	recipes, err := s.recipeRepository.RandomRecipes(ctx, models.RandomFilter{Count: count})
	if err != nil {
		return nil, fmt.Errorf("random recipes failed: %w", err)
	}

	return summarize(recipes), nil
}

func (s *recipeService) SearchIngredients(ctx context.Context, query string, page models.PageRequest) (models.IngredientSearch, error) {
	names, total, err := s.recipeRepository.SearchIngredients(ctx, query, page)
	if err != nil {
		return models.IngredientSearch{}, fmt.Errorf("ingredient search failed: %w", err)
	}

	return models.IngredientSearch{
		Ingredients: names,
		Pagination:  models.NewPagination(page, total),
	}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID int64, update models.RecipeUpdate) error {
	if err := s.validator.Validate(ctx, update); err != nil {
		return err
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipeID, update); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*recipeService.UpdateRecipe").Int64("recipe_id", recipeID).Msg("recipe updated")
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID int64) error {
	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*recipeService.DeleteRecipe").Int64("recipe_id", recipeID).Msg("recipe deleted")
	return nil
}

func summarize(recipes []models.Recipe) []models.RecipeSummary {
	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summaries = append(summaries, models.RecipeSummary{
			ID:          r.ID,
			Name:        r.Name,
			Author:      r.AuthorName,
			Description: r.Description,
			Category:    r.Category,
			Rating:      r.Rating,
			ReviewCount: r.ReviewCount,
			Image:       models.FirstImageURL(r.Images),
		})
	}
	return summaries
}
