// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"

	"github.com/MKhiriev/go-meal-planner/internal/service"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/models"
)

// Service mocks for handler tests. Every method delegates to a function
// field that a test may override; unset fields panic so unexpected calls
// surface immediately.

var (
	userIdentity  = models.Identity{UserID: 7, Username: "ann", SessionID: "sid-user"}
	adminIdentity = models.Identity{UserID: 1, Username: "root", Admin: true, SessionID: "sid-admin"}
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

type mockAuthService struct {
	signupFn         func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn          func(ctx context.Context, creds models.Credentials) (models.Session, models.SessionToken, error)
	logoutFn         func(ctx context.Context, sessionID string)
	resolveSessionFn func(ctx context.Context, token string) (models.Identity, error)
	whoAmIFn         func(ctx context.Context, userID int64) (models.User, error)
	updateEmailFn    func(ctx context.Context, userID int64, update models.EmailUpdate) error
	updatePasswordFn func(ctx context.Context, userID int64, update models.PasswordUpdate) error
	deleteAccountFn  func(ctx context.Context, identity models.Identity) error
}

func (m *mockAuthService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.signupFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, models.SessionToken, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) {
	m.logoutFn(ctx, sessionID)
}

// ResolveSession knows userToken and adminToken unless overridden.
func (m *mockAuthService) ResolveSession(ctx context.Context, token string) (models.Identity, error) {
	if m.resolveSessionFn != nil {
		return m.resolveSessionFn(ctx, token)
	}
	switch token {
	case userToken:
		return userIdentity, nil
	case adminToken:
		return adminIdentity, nil
	}
	return models.Identity{}, service.ErrSessionInvalid
}

func (m *mockAuthService) WhoAmI(ctx context.Context, userID int64) (models.User, error) {
	return m.whoAmIFn(ctx, userID)
}

func (m *mockAuthService) UpdateEmail(ctx context.Context, userID int64, update models.EmailUpdate) error {
	return m.updateEmailFn(ctx, userID, update)
}

func (m *mockAuthService) UpdatePassword(ctx context.Context, userID int64, update models.PasswordUpdate) error {
	return m.updatePasswordFn(ctx, userID, update)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	return m.deleteAccountFn(ctx, identity)
}

type mockRecipeService struct {
	searchFn            func(ctx context.Context, search models.RecipeSearch, page models.PageRequest) (models.Page[models.RecipeSummary], error)
	getRecipeFn         func(ctx context.Context, recipeID int64) (models.Recipe, error)
	randomFn            func(ctx context.Context, count int) ([]models.RecipeSummary, error)
	searchIngredientsFn func(ctx context.Context, query string, page models.PageRequest) (models.IngredientSearch, error)
	updateRecipeFn      func(ctx context.Context, recipeID int64, update models.RecipeUpdate) error
	deleteRecipeFn      func(ctx context.Context, recipeID int64) error
}

func (m *mockRecipeService) Search(ctx context.Context, search models.RecipeSearch, page models.PageRequest) (models.Page[models.RecipeSummary], error) {
	return m.searchFn(ctx, search, page)
}

func (m *mockRecipeService) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	return m.getRecipeFn(ctx, recipeID)
}

func (m *mockRecipeService) Random(ctx context.Context, count int) ([]models.RecipeSummary, error) {
	return m.randomFn(ctx, count)
}

func (m *mockRecipeService) SearchIngredients(ctx context.Context, query string, page models.PageRequest) (models.IngredientSearch, error) {
	return m.searchIngredientsFn(ctx, query, page)
}

func (m *mockRecipeService) UpdateRecipe(ctx context.Context, recipeID int64, update models.RecipeUpdate) error {
	return m.updateRecipeFn(ctx, recipeID, update)
}

func (m *mockRecipeService) DeleteRecipe(ctx context.Context, recipeID int64) error {
	return m.deleteRecipeFn(ctx, recipeID)
}

type mockRecommendationService struct {
	recommendFn          func(ctx context.Context, userID int64) (models.Recommendations, error)
	missingIngredientsFn func(ctx context.Context, recipeID int64, identity *models.Identity) (models.MissingIngredients, error)
}

func (m *mockRecommendationService) Recommend(ctx context.Context, userID int64) (models.Recommendations, error) {
	return m.recommendFn(ctx, userID)
}

func (m *mockRecommendationService) MissingIngredients(ctx context.Context, recipeID int64, identity *models.Identity) (models.MissingIngredients, error) {
	return m.missingIngredientsFn(ctx, recipeID, identity)
}

type mockItemService struct {
	getItemsFn    func(ctx context.Context, userID int64) ([]models.Item, error)
	updateItemsFn func(ctx context.Context, userID int64, update models.ItemsUpdate) (bool, error)
}

func (m *mockItemService) GetItems(ctx context.Context, userID int64) ([]models.Item, error) {
	return m.getItemsFn(ctx, userID)
}

func (m *mockItemService) UpdateItems(ctx context.Context, userID int64, update models.ItemsUpdate) (bool, error) {
	return m.updateItemsFn(ctx, userID, update)
}

type mockListService struct {
	listIDsFn           func(ctx context.Context, ownerID int64) ([]int64, error)
	createListFn        func(ctx context.Context, ownerID int64, request models.ListRequest) (models.RecipeList, error)
	updateListFn        func(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error)
	removeRecipesFn     func(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error)
	deleteListFn        func(ctx context.Context, ownerID, listID int64) error
	getListFn           func(ctx context.Context, listID int64, identity *models.Identity) (models.RecipeList, error)
	generateFavoritesFn func(ctx context.Context, ownerID int64) (models.RecipeList, bool, error)
	favoritesFn         func(ctx context.Context, ownerID int64) (models.RecipeList, error)
	searchPublicFn      func(ctx context.Context, query string, page models.PageRequest) (models.Page[models.RecipeList], error)
}

func (m *mockListService) ListIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	return m.listIDsFn(ctx, ownerID)
}

func (m *mockListService) CreateList(ctx context.Context, ownerID int64, request models.ListRequest) (models.RecipeList, error) {
	return m.createListFn(ctx, ownerID, request)
}

func (m *mockListService) UpdateList(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error) {
	return m.updateListFn(ctx, ownerID, listID, request)
}

func (m *mockListService) RemoveRecipes(ctx context.Context, ownerID, listID int64, request models.ListRequest) (models.RecipeList, error) {
	return m.removeRecipesFn(ctx, ownerID, listID, request)
}

func (m *mockListService) DeleteList(ctx context.Context, ownerID, listID int64) error {
	return m.deleteListFn(ctx, ownerID, listID)
}

func (m *mockListService) GetList(ctx context.Context, listID int64, identity *models.Identity) (models.RecipeList, error) {
	return m.getListFn(ctx, listID, identity)
}

func (m *mockListService) GenerateFavorites(ctx context.Context, ownerID int64) (models.RecipeList, bool, error) {
	return m.generateFavoritesFn(ctx, ownerID)
}

func (m *mockListService) Favorites(ctx context.Context, ownerID int64) (models.RecipeList, error) {
	return m.favoritesFn(ctx, ownerID)
}

func (m *mockListService) SearchPublic(ctx context.Context, query string, page models.PageRequest) (models.Page[models.RecipeList], error) {
	return m.searchPublicFn(ctx, query, page)
}

type mockMealPlanService struct {
	addMealFn     func(ctx context.Context, userID int64, request models.MealPlanRequest) error
	getMealPlanFn func(ctx context.Context, userID int64, mealDate string) ([]models.MealPlanItem, error)
	deleteMealFn  func(ctx context.Context, userID int64, mealDate, mealType string) error
}

func (m *mockMealPlanService) AddMeal(ctx context.Context, userID int64, request models.MealPlanRequest) error {
	return m.addMealFn(ctx, userID, request)
}

func (m *mockMealPlanService) GetMealPlan(ctx context.Context, userID int64, mealDate string) ([]models.MealPlanItem, error) {
	return m.getMealPlanFn(ctx, userID, mealDate)
}

func (m *mockMealPlanService) DeleteMeal(ctx context.Context, userID int64, mealDate, mealType string) error {
	return m.deleteMealFn(ctx, userID, mealDate, mealType)
}

type mockUserRecipeService struct {
	listUserRecipesFn  func(ctx context.Context, userID int64) ([]models.UserRecipe, error)
	getUserRecipeFn    func(ctx context.Context, id, userID int64) (models.UserRecipe, error)
	createUserRecipeFn func(ctx context.Context, userID int64, data []byte) (int64, error)
	updateUserRecipeFn func(ctx context.Context, id, userID int64, data []byte) error
	deleteUserRecipeFn func(ctx context.Context, id, userID int64) error
	submitFn           func(ctx context.Context, id, userID int64) error
	unsubmitFn         func(ctx context.Context, id int64, identity models.Identity) error
	listSubmittedFn    func(ctx context.Context) ([]models.UserRecipe, error)
	approveFn          func(ctx context.Context, id int64) (int64, error)
}

func (m *mockUserRecipeService) ListUserRecipes(ctx context.Context, userID int64) ([]models.UserRecipe, error) {
	return m.listUserRecipesFn(ctx, userID)
}

func (m *mockUserRecipeService) GetUserRecipe(ctx context.Context, id, userID int64) (models.UserRecipe, error) {
	return m.getUserRecipeFn(ctx, id, userID)
}

func (m *mockUserRecipeService) CreateUserRecipe(ctx context.Context, userID int64, data []byte) (int64, error) {
	return m.createUserRecipeFn(ctx, userID, data)
}

func (m *mockUserRecipeService) UpdateUserRecipe(ctx context.Context, id, userID int64, data []byte) error {
	return m.updateUserRecipeFn(ctx, id, userID, data)
}

func (m *mockUserRecipeService) DeleteUserRecipe(ctx context.Context, id, userID int64) error {
	return m.deleteUserRecipeFn(ctx, id, userID)
}

func (m *mockUserRecipeService) Submit(ctx context.Context, id, userID int64) error {
	return m.submitFn(ctx, id, userID)
}

func (m *mockUserRecipeService) Unsubmit(ctx context.Context, id int64, identity models.Identity) error {
	return m.unsubmitFn(ctx, id, identity)
}

func (m *mockUserRecipeService) ListSubmitted(ctx context.Context) ([]models.UserRecipe, error) {
	return m.listSubmittedFn(ctx)
}

func (m *mockUserRecipeService) Approve(ctx context.Context, id int64) (int64, error) {
	return m.approveFn(ctx, id)
}

type mockImageService struct {
	uploadImageFn func(ctx context.Context, filename string, r io.Reader) (string, error)
	openImageFn   func(ctx context.Context, name string) (store.ImageFile, error)
}

func (m *mockImageService) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return m.uploadImageFn(ctx, filename, r)
}

func (m *mockImageService) OpenImage(ctx context.Context, name string) (store.ImageFile, error) {
	return m.openImageFn(ctx, name)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
