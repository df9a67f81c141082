// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope shared by every JSON response.
// Route-specific payload structs embed it.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK returns a successful envelope with the given message.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail returns a failed envelope with the given message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

type LoginResponse struct {
	Response
	Admin bool `json:"admin"`
}

type WhoAmIResponse struct {
	Response
	User  string `json:"user"`
	Admin bool   `json:"admin"`
}

type RecipePageResponse struct {
	Response
	Recipes    []RecipeSummary `json:"recipes"`
	Query      string          `json:"query,omitempty"`
	Category   string          `json:"category,omitempty"`
	Pagination Pagination      `json:"pagination"`
}

type RecipeListResponse struct {
	Response
	Recipes []RecipeSummary `json:"recipes"`
}

type RecipeResponse struct {
	Response
	Recipe Recipe `json:"recipe"`
}

type RecommendationsResponse struct {
	Response
	Recipes     []RecommendedRecipe `json:"recipes"`
	PantryItems []string            `json:"pantryItems"`
}

type MissingIngredientsResponse struct {
	Response
	Missing     []string `json:"missing_ingredients"`
	PantryItems []string `json:"pantry_items"`
	Recipe      []string `json:"recipe_ingredients"`
}

type ItemsResponse struct {
	Response
	Items []Item `json:"items"`
}

type IngredientSearchResponse struct {
	Response
	Ingredients []string   `json:"ingredients"`
	Query       string     `json:"query"`
	Pagination  Pagination `json:"pagination"`
}

type ListIDsResponse struct {
	Response
	ListIDs []int64 `json:"list_ids"`
}

type ListResponse struct {
	Response
	List RecipeList `json:"list"`
}

type ListPageResponse struct {
	Response
	Lists      []RecipeList `json:"lists"`
	Query      string       `json:"query"`
	Pagination Pagination   `json:"pagination"`
}

type MealPlanResponse struct {
	Response
	MealPlan []MealPlanItem `json:"mealPlan"`
}

type UserRecipeResponse struct {
	Response
	Recipe UserRecipe `json:"recipe"`
}

type UserRecipesResponse struct {
	Response
	Recipes []UserRecipe `json:"recipes"`
}

type UserRecipeIDResponse struct {
	Response
	ID int64 `json:"id"`
}

type ApprovedRecipeResponse struct {
	Response
	RecipeID int64 `json:"recipe_id"`
}

type UploadResponse struct {
	Response
	URL string `json:"url"`
}
