// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// MealDateLayout is the only accepted meal date format.
const MealDateLayout = "2006-01-02"

// MealType is one of the three daily meal slots.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// Valid reports whether t is a known meal slot.
func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

// MealPlanEntry schedules one recipe into a (user, date, meal type) slot.
// At most one entry exists per slot.
type MealPlanEntry struct {
	ID       int64
	UserID   int64
	MealDate time.Time
	MealType MealType
	RecipeID int64
}

// TableName returns the name of the database table
// associated with the MealPlanEntry model.
func (m MealPlanEntry) TableName() string {
	return "meal_plans"
}

// MealPlanItem is a scheduled meal joined with its recipe.
type MealPlanItem struct {
	MealDate    string   `json:"mealDate"`
	MealType    MealType `json:"mealType"`
	RecipeID    int64    `json:"recipeId"`
	RecipeName  string   `json:"recipeName"`
	Description string   `json:"description"`
	CookTime    string   `json:"cookTime"`
	ImageURL    string   `json:"imageUrl"`
}

// MealPlanRequest is the body of add and delete routes. RecipeID is kept raw
// to accept numeric strings.
type MealPlanRequest struct {
	MealDate string          `json:"mealDate"`
	MealType string          `json:"mealType"`
	RecipeID json.RawMessage `json:"recipeId,omitempty"`
}

// MealSlot identifies a validated (date, meal type) slot.
type MealSlot struct {
	Date time.Time
	Type MealType
}
