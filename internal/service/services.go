// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the meal planner, one service
// per route group, on top of the repositories in package store.
package service

import (
	"math/rand/v2"

	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/crypto"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

type Services struct {
	AuthService           AuthService
	RecipeService         RecipeService
	RecommendationService RecommendationService
	PantryService         ItemService
	GroceryService        ItemService
	ListService           ListService
	MealPlanService       MealPlanService
	UserRecipeService     UserRecipeService
	ImageService          ImageService
	AppInfoService        AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, rnd *rand.Rand, logger *logger.Logger) (*Services, error) {
	ids := utils.NewUUIDGenerator()

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	auth := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, storages.SessionStore, crypto.NewPasswordHasher(), ids, cfg.App, logger),
	)
	lists := NewListValidationService().Wrap(NewListService(storages.ListRepository, logger))

	return &Services{
		AuthService:           auth,
		RecipeService:         NewRecipeService(storages.RecipeRepository, logger),
		RecommendationService: NewRecommendationService(storages.RecipeRepository, storages.PantryRepository, rnd, logger),
		PantryService:         NewItemService(models.ItemKindPantry, storages.PantryRepository, logger),
		GroceryService:        NewItemService(models.ItemKindGrocery, storages.GroceryRepository, logger),
		ListService:           lists,
		MealPlanService:       NewMealPlanService(storages.MealPlanRepository, storages.RecipeRepository, logger),
		UserRecipeService:     NewUserRecipeService(storages.UserRecipeRepository, logger),
		ImageService:          NewImageService(storages.ImageStorage, ids, logger),
		AppInfoService:        appInfo,
	}, nil
}
