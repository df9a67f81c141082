// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/mock"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRecipeSvc(t *testing.T) (RecipeService, *mock.MockRecipeRepository) {
	t.Helper()
	repo := mock.NewMockRecipeRepository(gomock.NewController(t))
	return NewRecipeService(repo, logger.Nop()), repo
}

func TestRecipeService_Search(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	page := models.NewPageRequest(1, 2)
	search := models.RecipeSearch{Query: "soup", Scope: models.SearchByName}
	rating := 4.0

	repo.EXPECT().SearchRecipes(gomock.Any(), search, page).Return([]models.Recipe{
		{ID: 1, Name: "Soup", AuthorName: "Ann", Rating: &rating, Images: `c("https://a/1.jpg", "https://a/2.jpg")`},
		{ID: 2, Name: "Stew", Images: "character(0)"},
	}, int64(5), nil)

	result, err := svc.Search(context.Background(), search, page)

	require.NoError(t, err)
	assert.Equal(t, []models.RecipeSummary{
		{ID: 1, Name: "Soup", Author: "Ann", Rating: &rating, Image: "https://a/1.jpg"},
		{ID: 2, Name: "Stew"},
	}, result.Items)
	assert.Equal(t, models.Pagination{Page: 1, PerPage: 2, Total: 5, TotalPages: 3}, result.Pagination)
}

func TestRecipeService_Search_Error(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	repo.EXPECT().SearchRecipes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), store.ErrExecutingQuery)

	_, err := svc.Search(context.Background(), models.RecipeSearch{}, models.NewPageRequest(1, 20))
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestRecipeService_Random(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{requested: 0, want: DefaultRandomCount},
		{requested: -4, want: DefaultRandomCount},
		{requested: 3, want: 3},
		{requested: 500, want: MaxRandomCount},
	}

	for _, tt := range tests {
		svc, repo := newTestRecipeSvc(t)
		repo.EXPECT().RandomRecipes(gomock.Any(), models.RandomFilter{Count: tt.want}).Return(nil, nil)

		summaries, err := svc.Random(context.Background(), tt.requested)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	}
}

func TestRecipeService_SearchIngredients(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	page := models.NewPageRequest(1, 20)

	repo.EXPECT().SearchIngredients(gomock.Any(), "egg", page).Return([]string{"egg", "eggplant"}, int64(2), nil)

	result, err := svc.SearchIngredients(context.Background(), "egg", page)
	require.NoError(t, err)
	assert.Equal(t, []string{"egg", "eggplant"}, result.Ingredients)
	assert.Equal(t, int64(1), result.Pagination.TotalPages)
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	update := models.RecipeUpdate{Name: ptr("Better soup")}

	repo.EXPECT().UpdateRecipe(gomock.Any(), int64(8), update).Return(nil)
	require.NoError(t, svc.UpdateRecipe(context.Background(), 8, update))

	requireReason(t, svc.UpdateRecipe(context.Background(), 8, models.RecipeUpdate{}), validators.ReasonNoFieldsToUpdate)

	repo.EXPECT().UpdateRecipe(gomock.Any(), int64(9), update).Return(store.ErrRecipeNotFound)
	assert.ErrorIs(t, svc.UpdateRecipe(context.Background(), 9, update), store.ErrRecipeNotFound)
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)

	repo.EXPECT().DeleteRecipe(gomock.Any(), int64(8)).Return(errors.New("boom"))
	assert.Error(t, svc.DeleteRecipe(context.Background(), 8))
}
