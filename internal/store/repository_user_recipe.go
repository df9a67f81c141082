// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/models"
)

type userRecipeRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRecipeRepository constructs a [UserRecipeRepository] backed by db.
func NewUserRecipeRepository(db *DB, logger *logger.Logger) UserRecipeRepository {
	logger.Debug().Msg("creating user recipe repository")
	return &userRecipeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRecipeRepository) ListUserRecipes(ctx context.Context, userID int64) ([]models.UserRecipe, error) {
	recipes, err := r.queryUserRecipes(ctx, listUserRecipes, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRecipeRepository.ListUserRecipes").Int64("user_id", userID).Msg("failed to list user recipes")
	}
	return recipes, err
}

func (r *userRecipeRepository) ListSubmitted(ctx context.Context) ([]models.UserRecipe, error) {
	recipes, err := r.queryUserRecipes(ctx, listSubmittedUserRecipes)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRecipeRepository.ListSubmitted").Msg("failed to list submitted recipes")
	}
	return recipes, err
}

func (r *userRecipeRepository) GetOwnedUserRecipe(ctx context.Context, id, userID int64) (models.UserRecipe, error) {
	recipe, err := scanUserRecipe(r.QueryRowContext(ctx, getOwnedUserRecipe, id, userID))
	if err != nil && !errors.Is(err, ErrUserRecipeNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRecipeRepository.GetOwnedUserRecipe").Int64("id", id).Msg("failed to get user recipe")
	}
	return recipe, err
}

func (r *userRecipeRepository) GetUserRecipe(ctx context.Context, id int64) (models.UserRecipe, error) {
	recipe, err := scanUserRecipe(r.QueryRowContext(ctx, getUserRecipe, id))
	if err != nil && !errors.Is(err, ErrUserRecipeNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRecipeRepository.GetUserRecipe").Int64("id", id).Msg("failed to get user recipe")
	}
	return recipe, err
}

func (r *userRecipeRepository) CreateUserRecipe(ctx context.Context, userID int64, data []byte) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	if err := r.QueryRowContext(ctx, createUserRecipe, userID, string(data)).Scan(&id); err != nil {
		log.Err(err).Str("func", "*userRecipeRepository.CreateUserRecipe").Int64("user_id", userID).Msg("failed to create user recipe")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (r *userRecipeRepository) UpdateUserRecipe(ctx context.Context, id, userID int64, data []byte) error {
	log := logger.FromContext(ctx)

	res, err := r.ExecContext(ctx, updateUserRecipe, string(data), id, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRecipeRepository.UpdateUserRecipe").Int64("id", id).Msg("failed to update user recipe")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrUserRecipeNotFound)
}

func (r *userRecipeRepository) DeleteUserRecipe(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.ExecContext(ctx, deleteUserRecipe, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRecipeRepository.DeleteUserRecipe").Int64("id", id).Msg("failed to delete user recipe")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrUserRecipeNotFound)
}

func (r *userRecipeRepository) SetSubmitted(ctx context.Context, change models.SubmissionChange) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetSubmittedQuery(change)
	if err != nil {
		log.Err(err).Str("func", "*userRecipeRepository.SetSubmitted").Msg("failed to build query")
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRecipeRepository.SetSubmitted").Int64("id", change.ID).Msg("failed to set submitted flag")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrUserRecipeNotFound)
}

// Approve publishes recipe and removes document id atomically. Nothing is
// written when the document no longer exists.
func (r *userRecipeRepository) Approve(ctx context.Context, id int64, recipe models.Recipe) (int64, error) {
	log := logger.FromContext(ctx)

	args, err := recipeInsertArgs(recipe)
	if err != nil {
		return 0, err
	}

	var recipeID int64
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insertRecipe, args...).Scan(&recipeID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		res, err := tx.ExecContext(ctx, deleteApprovedUserRecipe, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return expectAffected(res, ErrUserRecipeNotFound)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRecipeRepository.Approve").Int64("id", id).Msg("failed to approve user recipe")
		return 0, err
	}

	log.Info().Str("func", "*userRecipeRepository.Approve").Int64("id", id).Int64("recipe_id", recipeID).Msg("user recipe approved")
	return recipeID, nil
}

func (r *userRecipeRepository) queryUserRecipes(ctx context.Context, query string, args ...any) ([]models.UserRecipe, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.UserRecipe, 0)
	for rows.Next() {
		recipe, err := scanUserRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

func scanUserRecipe(row rowScanner) (models.UserRecipe, error) {
	var (
		recipe models.UserRecipe
		data   []byte
	)

	err := row.Scan(&recipe.ID, &recipe.UserID, &recipe.Submitted, &data, &recipe.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserRecipe{}, ErrUserRecipeNotFound
	}
	if err != nil {
		return models.UserRecipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	recipe.Data = data

	return recipe, nil
}

func recipeInsertArgs(recipe models.Recipe) ([]any, error) {
	quantities, err := encodeJSON(nonNilStrings(recipe.IngredientQuantities))
	if err != nil {
		return nil, err
	}
	parts, err := encodeJSON(nonNilStrings(recipe.IngredientParts))
	if err != nil {
		return nil, err
	}
	steps, err := encodeJSON(nonNilStrings(recipe.Instructions))
	if err != nil {
		return nil, err
	}
	nutrition := "{}"
	if len(recipe.NutritionFacts) > 0 {
		nutrition = string(recipe.NutritionFacts)
	}

	return []any{
		recipe.Name, recipe.AuthorName, recipe.Description, recipe.Category, recipe.Keywords,
		recipe.CookTime, recipe.PrepTime, recipe.TotalTime, recipe.DatePublished, recipe.Rating, recipe.ReviewCount,
		recipe.Servings, recipe.Yield, quantities, parts,
		steps, nutrition, recipe.Images, recipe.Ingredients,
	}, nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
