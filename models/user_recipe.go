// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// UserRecipe is a user-authored recipe document awaiting moderation.
// Data is stored verbatim so unknown keys survive a round-trip.
type UserRecipe struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId,omitempty"`
	Submitted bool            `json:"submitted"`
	Data      json.RawMessage `json:"recipe_data"`
	CreatedAt time.Time       `json:"-"`
}

// TableName returns the name of the database table
// associated with the UserRecipe model.
func (u UserRecipe) TableName() string {
	return "user_made_recipes"
}

// RecipeDocument is the subset of a [UserRecipe] document that maps onto
// catalog columns on approval.
type RecipeDocument struct {
	Title         Text                 `json:"title"`
	Author        Text                 `json:"author"`
	Description   Text                 `json:"description"`
	Category      Text                 `json:"category"`
	Tags          Text                 `json:"tags"`
	PrepTime      Text                 `json:"prepTime"`
	CookTime      Text                 `json:"cookTime"`
	TotalTime     Text                 `json:"totalTime"`
	DatePublished Text                 `json:"datePublished"`
	Rating        Text                 `json:"rating"`
	ReviewCount   Text                 `json:"reviewCount"`
	Servings      Text                 `json:"servings"`
	Yield         Text                 `json:"yield"`
	Ingredients   []DocumentIngredient `json:"ingredients"`
	Instructions  []Text               `json:"instructions"`
	Nutrition     json.RawMessage      `json:"nutrition"`
	ImageURL      Text                 `json:"image_url"`
}

// DocumentIngredient is one ingredient row of a [RecipeDocument].
type DocumentIngredient struct {
	Amount     Text `json:"amount"`
	Unit       Text `json:"unit"`
	Ingredient Text `json:"ingredient"`
}

// Text is a string that also decodes from other JSON values. Arrays are
// joined with ", ".
type Text string

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Text) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*t = ""
		return nil
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case len(trimmed) > 0 && trimmed[0] == '[':
		var parts []Text
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return err
		}
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			values = append(values, string(p))
		}
		*t = Text(strings.Join(values, ", "))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*t = Text(n.String())
		return nil
	}

	var flag bool
	if err := json.Unmarshal(trimmed, &flag); err == nil {
		*t = Text(strconv.FormatBool(flag))
		return nil
	}

	*t = Text(trimmed)
	return nil
}

// String returns the text value.
func (t Text) String() string {
	return string(t)
}

// SubmissionChange flips the submitted flag of a [UserRecipe]. AnyOwner
// lifts the owner scope for administrators.
type SubmissionChange struct {
	ID        int64
	UserID    int64
	Submitted bool
	AnyOwner  bool
}
