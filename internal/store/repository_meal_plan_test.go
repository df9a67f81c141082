// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMeal(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entry := models.MealPlanEntry{UserID: 1, MealDate: day, MealType: models.Lunch, RecipeID: 5}

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "added"},
		{name: "slot taken", execErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrMealSlotTaken},
		{name: "unknown recipe", execErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrRecipeNotFound},
		{name: "other", execErr: errors.New("down"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewMealPlanRepository(db, logger.Nop())

			exp := mock.ExpectExec("INSERT INTO meal_plans").WithArgs(int64(1), day, "lunch", int64(5))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := repo.AddMeal(context.Background(), entry)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGetMealPlan(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMealPlanRepository(db, logger.Nop())
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT mp.meal_date").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"meal_date", "meal_type", "recipe_id", "name", "description", "cook_time", "images"}).
			AddRow(day, "breakfast", 5, "Porridge", "oats", "PT5M", `c("https://p.jpg", "https://q.jpg")`).
			AddRow(day, "dinner", 6, "Stew", "beef", "PT2H", "character(0)"))

	items, err := repo.GetMealPlan(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2025-03-01", items[0].MealDate)
	assert.Equal(t, models.Breakfast, items[0].MealType)
	assert.Equal(t, "https://p.jpg", items[0].ImageURL)
	assert.Empty(t, items[1].ImageURL)
}

func TestDeleteMeal(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMealPlanRepository(db, logger.Nop())
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM meal_plans").
		WithArgs(int64(1), day, "dinner").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteMeal(context.Background(), 1, models.MealSlot{Date: day, Type: models.Dinner})
	require.ErrorIs(t, err, ErrMealNotFound)
}
