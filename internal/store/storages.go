// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/redis/go-redis/v9"
)

// Storages bundles every persistence backend used by the services.
type Storages struct {
	UserRepository       UserRepository
	RecipeRepository     RecipeRepository
	ListRepository       ListRepository
	PantryRepository     ItemRepository
	GroceryRepository    ItemRepository
	MealPlanRepository   MealPlanRepository
	UserRecipeRepository UserRecipeRepository
	SessionStore         SessionStore
	ImageStorage         ImageStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects PostgreSQL and Redis, applies migrations and builds
// all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}

	redisClient, err := NewConnectRedis(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	images, err := NewImageFileStorage(cfg.Files.ImagesDir, log)
	if err != nil {
		_ = db.Close()
		_ = redisClient.Close()
		return nil, err
	}

	storages, err := newStorages(db, redisClient, images, log)
	if err != nil {
		_ = db.Close()
		_ = redisClient.Close()
		return nil, err
	}

	return storages, nil
}

func newStorages(db *DB, redisClient *redis.Client, images ImageStorage, log *logger.Logger) (*Storages, error) {
	pantry, err := NewItemRepository(db, models.ItemKindPantry, log)
	if err != nil {
		return nil, fmt.Errorf("error creating pantry repository: %w", err)
	}
	grocery, err := NewItemRepository(db, models.ItemKindGrocery, log)
	if err != nil {
		return nil, fmt.Errorf("error creating grocery repository: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		RecipeRepository:     NewRecipeRepository(db, log),
		ListRepository:       NewListRepository(db, log),
		PantryRepository:     pantry,
		GroceryRepository:    grocery,
		MealPlanRepository:   NewMealPlanRepository(db, log),
		UserRecipeRepository: NewUserRecipeRepository(db, log),
		SessionStore:         NewRedisSessionStore(redisClient, log),
		ImageStorage:         images,
		db:                   db,
		redis:                redisClient,
	}, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
