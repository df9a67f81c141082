// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/models"
)

// AuthService manages accounts and server-side sessions.
type AuthService interface {
	// Signup creates the account and its Favorites list.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)
	// Login verifies credentials, stores a session record and returns the
	// signed token for the session cookie.
	Login(ctx context.Context, creds models.Credentials) (models.Session, models.SessionToken, error)
	// Logout drops the session record. Store failures are only logged.
	Logout(ctx context.Context, sessionID string)
	// ResolveSession turns a session cookie value into the caller identity.
	ResolveSession(ctx context.Context, tokenString string) (models.Identity, error)
	WhoAmI(ctx context.Context, userID int64) (models.User, error)
	UpdateEmail(ctx context.Context, userID int64, update models.EmailUpdate) error
	UpdatePassword(ctx context.Context, userID int64, update models.PasswordUpdate) error
	// DeleteAccount removes the user with everything it owns and ends the
	// current session.
	DeleteAccount(ctx context.Context, identity models.Identity) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// RecipeService serves the recipe catalog.
type RecipeService interface {
	// Search browses the catalog when search.Query is empty.
	Search(ctx context.Context, search models.RecipeSearch, page models.PageRequest) (models.Page[models.RecipeSummary], error)
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)
	Random(ctx context.Context, count int) ([]models.RecipeSummary, error)
	SearchIngredients(ctx context.Context, query string, page models.PageRequest) (models.IngredientSearch, error)
	UpdateRecipe(ctx context.Context, recipeID int64, update models.RecipeUpdate) error
	DeleteRecipe(ctx context.Context, recipeID int64) error
}

// RecommendationService matches the catalog against a user's pantry.
type RecommendationService interface {
	Recommend(ctx context.Context, userID int64) (models.Recommendations, error)
	// MissingIngredients compares a recipe with the pantry of identity. A nil
	// identity treats every ingredient as missing.
	MissingIngredients(ctx context.Context, recipeID int64, identity *models.Identity) (models.MissingIngredients, error)
}

// ItemService manages one per-user item collection.
type ItemService interface {
	GetItems(ctx context.Context, userID int64) ([]models.Item, error)
	// UpdateItems merges the update into the stored collection. It reports
	// false when there was nothing to write.
	UpdateItems(ctx context.Context, userID int64, update models.ItemsUpdate) (bool, error)
}

// ListService manages recipe lists.
type ListService interface {
	ListIDs(ctx context.Context, ownerID int64) ([]int64, error)
	CreateList(ctx context.Context, ownerID int64, request models.ListRequest) (models.RecipeList, error)
	UpdateList(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error)
	RemoveRecipes(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error)
	DeleteList(ctx context.Context, ownerID, listID int64) error
	// GetList returns public lists to anyone and private lists to their owner.
	GetList(ctx context.Context, listID int64, identity *models.Identity) (models.RecipeList, error)
	// GenerateFavorites returns the Favorites list and whether it was created.
	GenerateFavorites(ctx context.Context, ownerID int64) (models.RecipeList, bool, error)
	Favorites(ctx context.Context, ownerID int64) (models.RecipeList, error)
	SearchPublic(ctx context.Context, query string, page models.PageRequest) (models.Page[models.RecipeList], error)
}

// ListServiceWrapper defines middleware composition for ListService.
type ListServiceWrapper interface {
	Wrap(ListService) ListService
}

// MealPlanService schedules recipes into daily meal slots.
type MealPlanService interface {
	AddMeal(ctx context.Context, userID int64, request models.MealPlanRequest) error
	// GetMealPlan filters by mealDate unless it is empty.
	GetMealPlan(ctx context.Context, userID int64, mealDate string) ([]models.MealPlanItem, error)
	DeleteMeal(ctx context.Context, userID int64, mealDate, mealType string) error
}

// UserRecipeService manages user-made recipe documents and their moderation.
type UserRecipeService interface {
	ListUserRecipes(ctx context.Context, userID int64) ([]models.UserRecipe, error)
	GetUserRecipe(ctx context.Context, id, userID int64) (models.UserRecipe, error)
	CreateUserRecipe(ctx context.Context, userID int64, data []byte) (int64, error)
	UpdateUserRecipe(ctx context.Context, id, userID int64, data []byte) error
	DeleteUserRecipe(ctx context.Context, id, userID int64) error
	Submit(ctx context.Context, id, userID int64) error
	// Unsubmit lets administrators revoke any submission.
	Unsubmit(ctx context.Context, id int64, identity models.Identity) error
	ListSubmitted(ctx context.Context) ([]models.UserRecipe, error)
	// Approve moves the document into the catalog and returns the new
	// recipe id.
	Approve(ctx context.Context, id int64) (int64, error)
}

// ImageService stores uploaded recipe images.
type ImageService interface {
	// UploadImage stores r under a generated name and returns its public URL.
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
	OpenImage(ctx context.Context, name string) (store.ImageFile, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
