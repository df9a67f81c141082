// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
)

// itemService serves one item collection (pantry or grocery). Updates are
// read-modify-write without locking, so concurrent updates of the same
// user are last-writer-wins.
type itemService struct {
	kind           models.ItemKind
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewItemService(kind models.ItemKind, items store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		kind:           kind,
		itemRepository: items,
		logger:         logger,
	}
}

// GetItems returns an empty list for users without a stored collection.
func (s *itemService) GetItems(ctx context.Context, userID int64) ([]models.Item, error) {
	items, err := s.itemRepository.GetItems(ctx, userID)
	if errors.Is(err, store.ErrItemsNotFound) {
		return []models.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s lookup failed: %w", s.kind, err)
	}
	return items, nil
}

func (s *itemService) UpdateItems(ctx context.Context, userID int64, update models.ItemsUpdate) (bool, error) {
	log := logger.FromContext(ctx)

	changes, err := validators.ParseItemChanges(update)
	if err != nil {
		return false, err
	}

	current, err := s.itemRepository.GetItems(ctx, userID)
	exists := true
	if errors.Is(err, store.ErrItemsNotFound) {
		exists = false
		current = nil
	} else if err != nil {
		return false, fmt.Errorf("%s lookup failed: %w", s.kind, err)
	}

	if !exists && !hasNonZero(changes) {
		return false, nil
	}

	merged := MergeItems(current, changes)
	if err = s.itemRepository.SaveItems(ctx, userID, merged); err != nil {
		return false, fmt.Errorf("%s save failed: %w", s.kind, err)
	}

	log.Debug().Str("func", "*itemService.UpdateItems").Str("kind", string(s.kind)).
		Int64("user_id", userID).Int("items", len(merged)).Msg("items saved")
	return true, nil
}

// MergeItems applies changes to current by exact name. A zero amount removes
// the item; anything else sets amount and units. Existing items keep their
// order and new names are appended. current is not modified.
func MergeItems(current []models.Item, changes []models.ItemChange) []models.Item {
	merged := make([]models.Item, 0, len(current)+len(changes))
	merged = append(merged, current...)

	for _, change := range changes {
		idx := -1
		for i := range merged {
			if merged[i].Name == change.Name {
				idx = i
				break
			}
		}

		switch {
		case change.Amount == 0 && idx >= 0:
			merged = append(merged[:idx], merged[idx+1:]...)
		case change.Amount == 0:
		case idx >= 0:
			merged[idx].Amount = change.Amount
			merged[idx].Units = change.Units
		default:
			merged = append(merged, models.Item{Name: change.Name, Amount: change.Amount, Units: change.Units})
		}
	}

	return merged
}

func hasNonZero(changes []models.ItemChange) bool {
	for _, c := range changes {
		if c.Amount != 0 {
			return true
		}
	}
	return false
}
