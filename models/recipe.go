// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Recipe is a catalog entry. JSON keys follow the catalog dataset column
// names because the frontend and the admin update route address fields by
// those names.
type Recipe struct {
	ID            int64      `json:"RecipeId"`
	Name          string     `json:"Name"`
	AuthorName    string     `json:"AuthorName"`
	Description   string     `json:"Description"`
	Category      string     `json:"RecipeCategory"`
	Keywords      string     `json:"Keywords"`
	CookTime      string     `json:"CookTime"`
	PrepTime      string     `json:"PrepTime"`
	TotalTime     string     `json:"TotalTime"`
	DatePublished *time.Time `json:"DatePublished"`
	Rating        *float64   `json:"AggregatedRating"`
	ReviewCount   *int64     `json:"ReviewCount"`
	Servings      string     `json:"RecipeServings"`
	Yield         string     `json:"RecipeYield"`

	IngredientQuantities []string        `json:"RecipeIngredientQuantities"`
	IngredientParts      []string        `json:"RecipeIngredientParts"`
	Instructions         []string        `json:"RecipeInstructions"`
	NutritionFacts       json.RawMessage `json:"NutritionFacts"`

	// Images is either a single URL or an R-style vector `c("u1", "u2")`.
	Images string `json:"Images"`

	// Ingredients is the comma-separated list of ingredient names used by
	// pantry-based recommendations and ingredient search.
	Ingredients string `json:"ingredients"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeSummary is the compact representation returned by list routes.
type RecipeSummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int64   `json:"reviewCount"`
	Image       string   `json:"image"`
}

// RecipeUpdate is the closed set of catalog fields an administrator may
// change. A nil field is left untouched.
type RecipeUpdate struct {
	Name                 *string          `json:"Name"`
	AuthorName           *string          `json:"AuthorName"`
	Description          *string          `json:"Description"`
	Category             *string          `json:"RecipeCategory"`
	Keywords             *string          `json:"Keywords"`
	CookTime             *string          `json:"CookTime"`
	PrepTime             *string          `json:"PrepTime"`
	TotalTime            *string          `json:"TotalTime"`
	DatePublished        *string          `json:"DatePublished"`
	Rating               *float64         `json:"AggregatedRating"`
	ReviewCount          *int64           `json:"ReviewCount"`
	Servings             *string          `json:"RecipeServings"`
	Yield                *string          `json:"RecipeYield"`
	IngredientQuantities *[]string        `json:"RecipeIngredientQuantities"`
	IngredientParts      *[]string        `json:"RecipeIngredientParts"`
	Instructions         *[]string        `json:"RecipeInstructions"`
	NutritionFacts       *json.RawMessage `json:"NutritionFacts"`
	Images               *string          `json:"Images"`
	Ingredients          *string          `json:"ingredients"`
}

// IsEmpty reports whether no field was provided.
func (u RecipeUpdate) IsEmpty() bool {
	return u == RecipeUpdate{}
}

// RecommendedRecipe is a recommendation entry with its pantry match score.
type RecommendedRecipe struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Images     string   `json:"images"`
	Rating     *float64 `json:"rating"`
	Category   string   `json:"category"`
	MatchCount int      `json:"matchCount"`
}

// Recommendations is the result of a pantry-based recommendation run.
type Recommendations struct {
	Recipes     []RecommendedRecipe
	PantryItems []string
	Message     string
}

// MissingIngredients splits a recipe's ingredient parts against the
// caller's pantry.
type MissingIngredients struct {
	Missing       []string
	InPantry      []string
	All           []string
	Authenticated bool
}

// SearchScope selects which columns a catalog search matches against.
type SearchScope int

const (
	// SearchAll matches name, description and ingredient parts.
	SearchAll SearchScope = iota
	SearchByName
	SearchByIngredients
	SearchByCategory
)

// RecipeSearch is a catalog query. An empty Query browses the whole catalog.
type RecipeSearch struct {
	Query string
	Scope SearchScope
}

// RandomFilter narrows a random catalog sample.
type RandomFilter struct {
	Count      int
	WithImages bool
	Exclude    []int64
}
