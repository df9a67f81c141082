// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-meal-planner/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts the user together with an empty Favorites list in
	// one transaction.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateEmail(ctx context.Context, userID int64, email string) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	// DeleteUser removes the user; owned rows go with it through FK cascades.
	DeleteUser(ctx context.Context, userID int64) error
}

// RecipeRepository reads and moderates the recipe catalog.
type RecipeRepository interface {
	SearchRecipes(ctx context.Context, search models.RecipeSearch, page models.PageRequest) ([]models.Recipe, int64, error)
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)
	RecipeExists(ctx context.Context, recipeID int64) (bool, error)
	RandomRecipes(ctx context.Context, filter models.RandomFilter) ([]models.Recipe, error)
	// RecommendationCandidates returns every recipe that has both ingredient
	// text and images.
	RecommendationCandidates(ctx context.Context) ([]models.Recipe, error)
	SearchIngredients(ctx context.Context, query string, page models.PageRequest) ([]string, int64, error)
	UpdateRecipe(ctx context.Context, recipeID int64, update models.RecipeUpdate) error
	DeleteRecipe(ctx context.Context, recipeID int64) error
}

// ListRepository persists recipe lists.
type ListRepository interface {
	ListIDs(ctx context.Context, ownerID int64) ([]int64, error)
	CreateList(ctx context.Context, list models.RecipeList) (models.RecipeList, error)
	GetList(ctx context.Context, listID int64) (models.RecipeList, error)
	GetOwnedList(ctx context.Context, listID, ownerID int64) (models.RecipeList, error)
	FindListByTitle(ctx context.Context, ownerID int64, title string) (models.RecipeList, error)
	// UpdateList rewrites title, recipe ids and visibility of an owned list.
	UpdateList(ctx context.Context, list models.RecipeList) error
	DeleteList(ctx context.Context, listID, ownerID int64) error
	SearchPublicLists(ctx context.Context, query string, page models.PageRequest) ([]models.RecipeList, int64, error)
}

// ItemRepository persists one per-user item collection (pantry or grocery).
type ItemRepository interface {
	GetItems(ctx context.Context, userID int64) ([]models.Item, error)
	// SaveItems replaces the whole collection.
	SaveItems(ctx context.Context, userID int64, items []models.Item) error
}

// MealPlanRepository persists scheduled meals.
type MealPlanRepository interface {
	AddMeal(ctx context.Context, entry models.MealPlanEntry) error
	GetMealPlan(ctx context.Context, userID int64, date *time.Time) ([]models.MealPlanItem, error)
	DeleteMeal(ctx context.Context, userID int64, slot models.MealSlot) error
}

// UserRecipeRepository persists user-made recipe documents.
type UserRecipeRepository interface {
	ListUserRecipes(ctx context.Context, userID int64) ([]models.UserRecipe, error)
	ListSubmitted(ctx context.Context) ([]models.UserRecipe, error)
	GetOwnedUserRecipe(ctx context.Context, id, userID int64) (models.UserRecipe, error)
	GetUserRecipe(ctx context.Context, id int64) (models.UserRecipe, error)
	CreateUserRecipe(ctx context.Context, userID int64, data []byte) (int64, error)
	UpdateUserRecipe(ctx context.Context, id, userID int64, data []byte) error
	DeleteUserRecipe(ctx context.Context, id, userID int64) error
	SetSubmitted(ctx context.Context, change models.SubmissionChange) error
	// Approve inserts recipe into the catalog and deletes the document in
	// one transaction. It returns the new catalog id.
	Approve(ctx context.Context, id int64, recipe models.Recipe) (int64, error)
}

// SessionStore keeps server-side session records.
type SessionStore interface {
	CreateSession(ctx context.Context, session models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// ImageFile is an opened stored image.
type ImageFile interface {
	io.ReadSeekCloser
	Name() string
	ModTime() time.Time
}

// ImageStorage keeps uploaded images on disk.
type ImageStorage interface {
	SaveImage(ctx context.Context, name string, r io.Reader) error
	OpenImage(ctx context.Context, name string) (ImageFile, error)
}
