// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
)

// ListValidationService checks list requests before they reach the wrapped
// ListService.
type ListValidationService struct {
	inner     ListService
	validator validators.Validator
}

func NewListValidationService() ListServiceWrapper {
	return &ListValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ListValidationService) ListIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	return v.inner.ListIDs(ctx, ownerID)
}

func (v *ListValidationService) CreateList(ctx context.Context, ownerID int64, request models.ListRequest) (models.RecipeList, error) {
	return v.inner.CreateList(ctx, ownerID, request)
}

func (v *ListValidationService) UpdateList(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldListAnyField); err != nil {
		return models.RecipeList{}, err
	}
	return v.inner.UpdateList(ctx, ownerID, listID, request)
}

func (v *ListValidationService) RemoveRecipes(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldListRecipeIDs); err != nil {
		return models.RecipeList{}, err
	}
	return v.inner.RemoveRecipes(ctx, ownerID, listID, request)
}

func (v *ListValidationService) DeleteList(ctx context.Context, ownerID, listID int64) error {
	return v.inner.DeleteList(ctx, ownerID, listID)
}

func (v *ListValidationService) GetList(ctx context.Context, listID int64, identity *models.Identity) (models.RecipeList, error) {
	return v.inner.GetList(ctx, listID, identity)
}

func (v *ListValidationService) GenerateFavorites(ctx context.Context, ownerID int64) (models.RecipeList, bool, error) {
	return v.inner.GenerateFavorites(ctx, ownerID)
}

func (v *ListValidationService) Favorites(ctx context.Context, ownerID int64) (models.RecipeList, error) {
	return v.inner.Favorites(ctx, ownerID)
}

func (v *ListValidationService) SearchPublic(ctx context.Context, query string, page models.PageRequest) (models.Page[models.RecipeList], error) {
	q, err := validators.RequireQuery(query, validators.ReasonSearchRequired)
	if err != nil {
		return models.Page[models.RecipeList]{}, err
	}
	return v.inner.SearchPublic(ctx, q, page)
}

func (v *ListValidationService) Wrap(wrapped ListService) ListService {
	v.inner = wrapped
	return v
}
