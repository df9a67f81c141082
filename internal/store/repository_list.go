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

type listRepository struct {
	*DB
	logger *logger.Logger
}

// NewListRepository constructs a [ListRepository] backed by db.
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *listRepository) ListIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, getListIDs, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.ListIDs").Int64("owner_id", ownerID).Msg("failed to query list ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (r *listRepository) CreateList(ctx context.Context, list models.RecipeList) (models.RecipeList, error) {
	log := logger.FromContext(ctx)

	recipeIDs, err := encodeJSON(nonNilIDs(list.RecipeIDs))
	if err != nil {
		return models.RecipeList{}, err
	}

	created, err := scanList(r.QueryRowContext(ctx, createList, list.OwnerID, list.Title, recipeIDs, list.Public))
	if err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Int64("owner_id", list.OwnerID).Msg("failed to create list")
		return models.RecipeList{}, err
	}

	return created, nil
}

// GetList looks a list up regardless of owner.
func (r *listRepository) GetList(ctx context.Context, listID int64) (models.RecipeList, error) {
	list, err := scanList(r.QueryRowContext(ctx, getList, listID))
	if err != nil && !errors.Is(err, ErrListNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*listRepository.GetList").Int64("list_id", listID).Msg("failed to get list")
	}
	return list, err
}

func (r *listRepository) GetOwnedList(ctx context.Context, listID, ownerID int64) (models.RecipeList, error) {
	list, err := scanList(r.QueryRowContext(ctx, getOwnedList, listID, ownerID))
	if err != nil && !errors.Is(err, ErrListNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*listRepository.GetOwnedList").Int64("list_id", listID).Msg("failed to get list")
	}
	return list, err
}

func (r *listRepository) FindListByTitle(ctx context.Context, ownerID int64, title string) (models.RecipeList, error) {
	list, err := scanList(r.QueryRowContext(ctx, getListByTitle, ownerID, title))
	if err != nil && !errors.Is(err, ErrListNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*listRepository.FindListByTitle").Str("title", title).Msg("failed to find list")
	}
	return list, err
}

func (r *listRepository) UpdateList(ctx context.Context, list models.RecipeList) error {
	log := logger.FromContext(ctx)

	recipeIDs, err := encodeJSON(nonNilIDs(list.RecipeIDs))
	if err != nil {
		return err
	}

	res, err := r.ExecContext(ctx, updateList, list.Title, recipeIDs, list.Public, list.ID, list.OwnerID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.UpdateList").Int64("list_id", list.ID).Msg("failed to update list")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrListNotFound)
}

func (r *listRepository) DeleteList(ctx context.Context, listID, ownerID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.ExecContext(ctx, deleteList, listID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteList").Int64("list_id", listID).Msg("failed to delete list")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrListNotFound)
}

func (r *listRepository) SearchPublicLists(ctx context.Context, query string, page models.PageRequest) ([]models.RecipeList, int64, error) {
	log := logger.FromContext(ctx)
	pattern := likePattern(query)

	var total int64
	if err := r.QueryRowContext(ctx, countPublicLists, pattern).Scan(&total); err != nil {
		log.Err(err).Str("func", "*listRepository.SearchPublicLists").Msg("failed to count public lists")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.QueryContext(ctx, searchPublicLists, pattern, page.PerPage, page.Offset())
	if err != nil {
		log.Err(err).Str("func", "*listRepository.SearchPublicLists").Msg("failed to search public lists")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.RecipeList, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, 0, err
		}
		lists = append(lists, list)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lists, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (models.RecipeList, error) {
	var (
		list      models.RecipeList
		recipeIDs []byte
	)

	err := row.Scan(&list.ID, &list.OwnerID, &list.Title, &recipeIDs, &list.Public, &list.CreatedAt, &list.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RecipeList{}, ErrListNotFound
	}
	if err != nil {
		return models.RecipeList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = decodeJSON(recipeIDs, &list.RecipeIDs); err != nil {
		return models.RecipeList{}, err
	}
	list.RecipeIDs = nonNilIDs(list.RecipeIDs)

	return list, nil
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
