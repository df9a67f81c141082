// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/models"
)

// listService manages recipe lists. Merges are read-modify-write, so
// concurrent edits of one list are last-writer-wins.
type listService struct {
	listRepository store.ListRepository

	logger *logger.Logger
}

func NewListService(lists store.ListRepository, logger *logger.Logger) ListService {
	return &listService{
		listRepository: lists,
		logger:         logger,
	}
}

func (s *listService) ListIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	return s.listRepository.ListIDs(ctx, ownerID)
}

func (s *listService) CreateList(ctx context.Context, ownerID int64, request models.ListRequest) (models.RecipeList, error) {
	list := models.RecipeList{
		OwnerID:   ownerID,
		Title:     models.DefaultListTitle,
		RecipeIDs: []int64{},
	}
	if request.Title != nil && *request.Title != "" {
		list.Title = *request.Title
	}
	if request.RecipeIDs != nil {
		list.RecipeIDs = UnionIDs(nil, *request.RecipeIDs)
	}
	if request.Public != nil {
		list.Public = *request.Public
	}

	created, err := s.listRepository.CreateList(ctx, list)
	if err != nil {
		return models.RecipeList{}, fmt.Errorf("list creation failed: %w", err)
	}
	return created, nil
}

// UpdateList appends unseen recipe ids and overwrites title and visibility
// when they are given.
func (s *listService) UpdateList(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error) {
	list, err := s.listRepository.GetOwnedList(ctx, listID, ownerID)
	if err != nil {
		return models.RecipeList{}, err
	}

	if request.RecipeIDs != nil {
		list.RecipeIDs = UnionIDs(list.RecipeIDs, *request.RecipeIDs)
	}
	if request.Title != nil {
		list.Title = *request.Title
	}
	if request.Public != nil {
		list.Public = *request.Public
	}

	if err = s.listRepository.UpdateList(ctx, list); err != nil {
		return models.RecipeList{}, err
	}
	return list, nil
}

func (s *listService) RemoveRecipes(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error) {
	list, err := s.listRepository.GetOwnedList(ctx, listID, ownerID)
	if err != nil {
		return models.RecipeList{}, err
	}

	remove := []int64(*request.RecipeIDs)
	list.RecipeIDs = slices.DeleteFunc(list.RecipeIDs, func(id int64) bool {
		return slices.Contains(remove, id)
	})
	if list.RecipeIDs == nil {
		list.RecipeIDs = []int64{}
	}

	if err = s.listRepository.UpdateList(ctx, list); err != nil {
		return models.RecipeList{}, err
	}
	return list, nil
}

func (s *listService) DeleteList(ctx context.Context, ownerID, listID int64) error {
	return s.listRepository.DeleteList(ctx, listID, ownerID)
}

func (s *listService) GetList(ctx context.Context, listID int64, identity *models.Identity) (models.RecipeList, error) {
	list, err := s.listRepository.GetList(ctx, listID)
	if err != nil {
		return models.RecipeList{}, err
	}

	if !list.Public && (identity == nil || identity.UserID != list.OwnerID) {
		return models.RecipeList{}, ErrListNotAccessible
	}
	return list, nil
}

func (s *listService) GenerateFavorites(ctx context.Context, ownerID int64) (models.RecipeList, bool, error) {
	list, err := s.listRepository.FindListByTitle(ctx, ownerID, models.FavoritesListTitle)
	if err == nil {
		return list, false, nil
	}
	if !errors.Is(err, store.ErrListNotFound) {
		return models.RecipeList{}, false, err
	}

	created, err := s.listRepository.CreateList(ctx, models.RecipeList{
		OwnerID:   ownerID,
		Title:     models.FavoritesListTitle,
		RecipeIDs: []int64{},
	})
	if err != nil {
		return models.RecipeList{}, false, fmt.Errorf("favorites creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*listService.GenerateFavorites").Int64("user_id", ownerID).Msg("favorites list created")
	return created, true, nil
}

func (s *listService) Favorites(ctx context.Context, ownerID int64) (models.RecipeList, error) {
	list, err := s.listRepository.FindListByTitle(ctx, ownerID, models.FavoritesListTitle)
	if errors.Is(err, store.ErrListNotFound) {
		return models.RecipeList{}, ErrFavoritesNotFound
	}
	return list, err
}

func (s *listService) SearchPublic(ctx context.Context, query string, page models.PageRequest) (models.Page[models.RecipeList], error) {
	lists, total, err := s.listRepository.SearchPublicLists(ctx, query, page)
	if err != nil {
		return models.Page[models.RecipeList]{}, fmt.Errorf("public list search failed: %w", err)
	}

	return models.Page[models.RecipeList]{
		Items:      lists,
		Pagination: models.NewPagination(page, total),
	}, nil
}

// UnionIDs appends the ids of add not yet present in current, keeping the
// order of both and dropping duplicates. current is not modified.
func UnionIDs(current []int64, add []int64) []int64 {
	seen := make(map[int64]struct{}, len(current)+len(add))
	result := make([]int64, 0, len(current)+len(add))

	for _, ids := range [][]int64{current, add} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	return result
}
