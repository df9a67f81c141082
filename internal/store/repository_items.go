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

// itemRepository stores one JSON item collection per user in the table
// selected by its [models.ItemKind].
type itemRepository struct {
	*DB
	kind   models.ItemKind
	get    string
	save   string
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] for the pantry or the
// grocery list.
func NewItemRepository(db *DB, kind models.ItemKind, logger *logger.Logger) (ItemRepository, error) {
	table, ok := itemTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown item collection %q", kind)
	}

	logger.Debug().Str("kind", string(kind)).Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		kind:   kind,
		get:    getItemsQuery(table),
		save:   saveItemsQuery(table),
		logger: logger,
	}, nil
}

// GetItems returns [ErrItemsNotFound] when the user has no row yet.
func (r *itemRepository) GetItems(ctx context.Context, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	var raw []byte
	err := r.QueryRowContext(ctx, r.get, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemsNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItems").Str("kind", string(r.kind)).Int64("user_id", userID).Msg("failed to get items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items := make([]models.Item, 0)
	if err = decodeJSON(raw, &items); err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItems").Str("kind", string(r.kind)).Int64("user_id", userID).Msg("failed to decode items")
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) SaveItems(ctx context.Context, userID int64, items []models.Item) error {
	log := logger.FromContext(ctx)

	if items == nil {
		items = []models.Item{}
	}
	encoded, err := encodeJSON(items)
	if err != nil {
		return err
	}

	if _, err = r.ExecContext(ctx, r.save, userID, encoded); err != nil {
		log.Err(err).Str("func", "*itemRepository.SaveItems").Str("kind", string(r.kind)).Int64("user_id", userID).Msg("failed to save items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
