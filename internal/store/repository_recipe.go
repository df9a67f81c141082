// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/models"
)

// recipeRepository is the PostgreSQL-backed implementation of [RecipeRepository].
type recipeRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by db.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

// SearchRecipes returns one page of recipe summaries and the total number of
// matches.
func (r *recipeRepository) SearchRecipes(ctx context.Context, search models.RecipeSearch, page models.PageRequest) ([]models.Recipe, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountRecipesQuery(search)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.SearchRecipes").Msg("failed to build count query")
		return nil, 0, err
	}

	var total int64
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*recipeRepository.SearchRecipes").Msg("failed to count recipes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildSearchRecipesQuery(search, page)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.SearchRecipes").Msg("failed to build search query")
		return nil, 0, err
	}

	recipes, err := r.querySummaries(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.SearchRecipes").Str("query", search.Query).Msg("failed to search recipes")
		return nil, 0, err
	}

	return recipes, total, nil
}

// GetRecipe returns [ErrRecipeNotFound] when no row matches.
func (r *recipeRepository) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var (
		recipe        models.Recipe
		datePublished sql.NullTime
		rating        sql.NullFloat64
		reviewCount   sql.NullInt64
		quantities    []byte
		parts         []byte
		steps         []byte
		nutrition     []byte
	)

	err := r.QueryRowContext(ctx, getRecipe, recipeID).Scan(
		&recipe.ID, &recipe.Name, &recipe.AuthorName, &recipe.Description, &recipe.Category, &recipe.Keywords,
		&recipe.CookTime, &recipe.PrepTime, &recipe.TotalTime, &datePublished, &rating, &reviewCount,
		&recipe.Servings, &recipe.Yield, &quantities, &parts,
		&steps, &nutrition, &recipe.Images, &recipe.Ingredients,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Int64("recipe_id", recipeID).Msg("failed to get recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if datePublished.Valid {
		recipe.DatePublished = &datePublished.Time
	}
	if rating.Valid {
		recipe.Rating = &rating.Float64
	}
	if reviewCount.Valid {
		recipe.ReviewCount = &reviewCount.Int64
	}
	for _, column := range []struct {
		raw []byte
		dst any
	}{
		{quantities, &recipe.IngredientQuantities},
		{parts, &recipe.IngredientParts},
		{steps, &recipe.Instructions},
	} {
		if err = decodeJSON(column.raw, column.dst); err != nil {
			log.Err(err).Str("func", "*recipeRepository.GetRecipe").Int64("recipe_id", recipeID).Msg("failed to decode recipe column")
			return models.Recipe{}, err
		}
	}
	if len(nutrition) > 0 {
		recipe.NutritionFacts = nutrition
	}

	return recipe, nil
}

func (r *recipeRepository) RecipeExists(ctx context.Context, recipeID int64) (bool, error) {
	var exists bool
	if err := r.QueryRowContext(ctx, recipeExists, recipeID).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.RecipeExists").Int64("recipe_id", recipeID).Msg("failed to check recipe")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

func (r *recipeRepository) RandomRecipes(ctx context.Context, filter models.RandomFilter) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	if filter.Count <= 0 {
		return []models.Recipe{}, nil
	}

	query, args, err := buildRandomRecipesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.RandomRecipes").Msg("failed to build query")
		return nil, err
	}

	recipes, err := r.querySummaries(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.RandomRecipes").Int("count", filter.Count).Msg("failed to sample recipes")
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) RecommendationCandidates(ctx context.Context) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, getRecommendationCandidates)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.RecommendationCandidates").Msg("failed to query candidates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		var (
			recipe models.Recipe
			rating sql.NullFloat64
		)
		if err = rows.Scan(&recipe.ID, &recipe.Name, &recipe.Images, &rating, &recipe.Category, &recipe.Ingredients); err != nil {
			log.Err(err).Str("func", "*recipeRepository.RecommendationCandidates").Msg("failed to scan candidate")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if rating.Valid {
			recipe.Rating = &rating.Float64
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

// SearchIngredients pages over recipes whose ingredient text contains
// query and returns the distinct trimmed ingredient names on that page that
// contain it, in their stored casing. total counts every distinct matching
// name in the catalog.
func (r *recipeRepository) SearchIngredients(ctx context.Context, query string, page models.PageRequest) ([]string, int64, error) {
	log := logger.FromContext(ctx)
	pattern := likePattern(query)

	var total int64
	if err := r.QueryRowContext(ctx, countIngredients, pattern).Scan(&total); err != nil {
		log.Err(err).Str("func", "*recipeRepository.SearchIngredients").Msg("failed to count ingredients")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.QueryContext(ctx, searchIngredientRecipes, pattern, page.PerPage, page.Offset())
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.SearchIngredients").Msg("failed to search ingredients")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var ingredients string
		if err = rows.Scan(&ingredients); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		texts = append(texts, ingredients)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return matchingIngredients(texts, query), total, nil
}

// matchingIngredients splits comma-separated ingredient texts and keeps the
// distinct trimmed names containing query, case-insensitively, in first-seen
// order.
func matchingIngredients(texts []string, query string) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]struct{})
	matches := make([]string, 0)

	for _, text := range texts {
		for _, token := range strings.Split(text, ",") {
			name := strings.TrimSpace(token)
			if name == "" || !strings.Contains(strings.ToLower(name), needle) {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			matches = append(matches, name)
		}
	}
	return matches
}

// UpdateRecipe applies the non-nil fields of update. It returns
// [ErrRecipeNotFound] when no row was changed.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipeID int64, update models.RecipeUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecipeQuery(recipeID, update)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Int64("recipe_id", recipeID).Msg("failed to build update")
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Int64("recipe_id", recipeID).Msg("failed to update recipe")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrRecipeNotFound)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.ExecContext(ctx, deleteRecipe, recipeID)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Int64("recipe_id", recipeID).Msg("failed to delete recipe")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrRecipeNotFound)
}

// querySummaries runs a query selecting recipeSummaryColumns.
func (r *recipeRepository) querySummaries(ctx context.Context, query string, args ...any) ([]models.Recipe, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		var (
			recipe      models.Recipe
			rating      sql.NullFloat64
			reviewCount sql.NullInt64
		)
		if err = rows.Scan(&recipe.ID, &recipe.Name, &recipe.AuthorName, &recipe.Description,
			&recipe.Category, &rating, &reviewCount, &recipe.Images); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if rating.Valid {
			recipe.Rating = &rating.Float64
		}
		if reviewCount.Valid {
			recipe.ReviewCount = &reviewCount.Int64
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}
