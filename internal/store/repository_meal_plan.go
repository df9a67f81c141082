// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/models"
)

type mealPlanRepository struct {
	*DB
	logger *logger.Logger
}

// NewMealPlanRepository constructs a [MealPlanRepository] backed by db.
func NewMealPlanRepository(db *DB, logger *logger.Logger) MealPlanRepository {
	logger.Debug().Msg("creating meal plan repository")
	return &mealPlanRepository{
		DB:     db,
		logger: logger,
	}
}

// AddMeal inserts entry.
//
// Error handling:
//   - unique_violation on (user_id, meal_date, meal_type) → [ErrMealSlotTaken].
//   - foreign_key_violation on recipe_id → [ErrRecipeNotFound].
func (r *mealPlanRepository) AddMeal(ctx context.Context, entry models.MealPlanEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.ExecContext(ctx, addMeal, entry.UserID, entry.MealDate, string(entry.MealType), entry.RecipeID)
	if err == nil {
		return nil
	}

	class := r.classify(err)
	switch class {
	case ClassUniqueViolation:
		return ErrMealSlotTaken
	case ClassForeignKeyViolation:
		return ErrRecipeNotFound
	}

	log.Err(err).
		Str("func", "*mealPlanRepository.AddMeal").
		Str("error_class", class.String()).
		Int64("user_id", entry.UserID).
		Msg("failed to add meal")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// GetMealPlan returns the user's meals, optionally restricted to one date,
// ordered by date then breakfast, lunch, dinner.
func (r *mealPlanRepository) GetMealPlan(ctx context.Context, userID int64, date *time.Time) ([]models.MealPlanItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMealPlanQuery(userID, date)
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.GetMealPlan").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.GetMealPlan").Int64("user_id", userID).Msg("failed to query meal plan")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.MealPlanItem, 0)
	for rows.Next() {
		var (
			item     models.MealPlanItem
			mealDate time.Time
			mealType string
			images   string
		)
		if err = rows.Scan(&mealDate, &mealType, &item.RecipeID, &item.RecipeName, &item.Description, &item.CookTime, &images); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.MealDate = mealDate.Format(models.MealDateLayout)
		item.MealType = models.MealType(mealType)
		item.ImageURL = models.FirstImageURL(images)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// DeleteMeal returns [ErrMealNotFound] when the slot is empty.
func (r *mealPlanRepository) DeleteMeal(ctx context.Context, userID int64, slot models.MealSlot) error {
	log := logger.FromContext(ctx)

	res, err := r.ExecContext(ctx, deleteMeal, userID, slot.Date, string(slot.Type))
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.DeleteMeal").Int64("user_id", userID).Msg("failed to delete meal")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrMealNotFound)
}
