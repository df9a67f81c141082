// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
)

type userRecipeService struct {
	userRecipeRepository store.UserRecipeRepository

	logger *logger.Logger
}

func NewUserRecipeService(userRecipes store.UserRecipeRepository, logger *logger.Logger) UserRecipeService {
	return &userRecipeService{
		userRecipeRepository: userRecipes,
		logger:               logger,
	}
}

func (s *userRecipeService) ListUserRecipes(ctx context.Context, userID int64) ([]models.UserRecipe, error) {
	return s.userRecipeRepository.ListUserRecipes(ctx, userID)
}

func (s *userRecipeService) GetUserRecipe(ctx context.Context, id, userID int64) (models.UserRecipe, error) {
	return s.userRecipeRepository.GetOwnedUserRecipe(ctx, id, userID)
}

func (s *userRecipeService) CreateUserRecipe(ctx context.Context, userID int64, data []byte) (int64, error) {
	if err := requireDocument(data); err != nil {
		return 0, err
	}

	id, err := s.userRecipeRepository.CreateUserRecipe(ctx, userID, data)
	if err != nil {
		return 0, fmt.Errorf("user recipe creation failed: %w", err)
	}
	return id, nil
}

func (s *userRecipeService) UpdateUserRecipe(ctx context.Context, id, userID int64, data []byte) error {
	if err := requireDocument(data); err != nil {
		return err
	}
	return s.userRecipeRepository.UpdateUserRecipe(ctx, id, userID, data)
}

func (s *userRecipeService) DeleteUserRecipe(ctx context.Context, id, userID int64) error {
	return s.userRecipeRepository.DeleteUserRecipe(ctx, id, userID)
}

func (s *userRecipeService) Submit(ctx context.Context, id, userID int64) error {
	return s.userRecipeRepository.SetSubmitted(ctx, models.SubmissionChange{ID: id, UserID: userID, Submitted: true})
}

func (s *userRecipeService) Unsubmit(ctx context.Context, id int64, identity models.Identity) error {
	return s.userRecipeRepository.SetSubmitted(ctx, models.SubmissionChange{
		ID:        id,
		UserID:    identity.UserID,
		Submitted: false,
		AnyOwner:  identity.Admin,
	})
}

func (s *userRecipeService) ListSubmitted(ctx context.Context) ([]models.UserRecipe, error) {
	return s.userRecipeRepository.ListSubmitted(ctx)
}

func (s *userRecipeService) Approve(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	document, err := s.userRecipeRepository.GetUserRecipe(ctx, id)
	if err != nil {
		return 0, err
	}

	recipe, err := RecipeFromDocument(document.Data)
	if err != nil {
		log.Err(err).Str("func", "*userRecipeService.Approve").Int64("id", id).Msg("document cannot be mapped to a recipe")
		return 0, err
	}

	recipeID, err := s.userRecipeRepository.Approve(ctx, id, recipe)
	if err != nil {
		return 0, err
	}

	log.Info().Str("func", "*userRecipeService.Approve").Int64("id", id).Int64("recipe_id", recipeID).Msg("user recipe approved")
	return recipeID, nil
}

// RecipeFromDocument maps a user-made recipe document onto catalog columns.
// Ingredient amounts become quantities, units fill the ingredient parts and
// the ingredient names are joined into the comma-separated ingredients text.
func RecipeFromDocument(data json.RawMessage) (models.Recipe, error) {
	var doc models.RecipeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrDecodingUserRecipe, err)
	}

	recipe := models.Recipe{
		Name:                 doc.Title.String(),
		AuthorName:           doc.Author.String(),
		Description:          doc.Description.String(),
		Category:             doc.Category.String(),
		Keywords:             doc.Tags.String(),
		PrepTime:             doc.PrepTime.String(),
		CookTime:             doc.CookTime.String(),
		TotalTime:            doc.TotalTime.String(),
		Servings:             doc.Servings.String(),
		Yield:                doc.Yield.String(),
		Images:               doc.ImageURL.String(),
		IngredientQuantities: make([]string, 0, len(doc.Ingredients)),
		IngredientParts:      make([]string, 0, len(doc.Ingredients)),
		Instructions:         make([]string, 0, len(doc.Instructions)),
		NutritionFacts:       json.RawMessage(`{}`),
	}

	names := make([]string, 0, len(doc.Ingredients))
	for _, ing := range doc.Ingredients {
		recipe.IngredientQuantities = append(recipe.IngredientQuantities, ing.Amount.String())
		recipe.IngredientParts = append(recipe.IngredientParts, ing.Unit.String())
		names = append(names, ing.Ingredient.String())
	}
	recipe.Ingredients = strings.Join(names, ", ")

	for _, step := range doc.Instructions {
		recipe.Instructions = append(recipe.Instructions, step.String())
	}

	if n := bytes.TrimSpace(doc.Nutrition); len(n) > 0 && !bytes.Equal(n, []byte("null")) {
		recipe.NutritionFacts = n
	}

	if published := doc.DatePublished.String(); published != "" {
		if t, err := validators.ParseDatePublished(published); err == nil {
			recipe.DatePublished = &t
		}
	}
	if rating, err := strconv.ParseFloat(doc.Rating.String(), 64); err == nil {
		recipe.Rating = &rating
	}
	if reviews, err := strconv.ParseInt(doc.ReviewCount.String(), 10, 64); err == nil {
		recipe.ReviewCount = &reviews
	}

	return recipe, nil
}

// requireDocument accepts non-empty JSON objects only.
func requireDocument(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || len(fields) == 0 {
		return &validators.Error{Reason: validators.ReasonNoRecipeData}
	}
	return nil
}
