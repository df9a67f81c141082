// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"time"
)

const (
	FavoritesListTitle = "Favorites"
	DefaultListTitle   = "Untitled List"
)

// RecipeList is a named, owner-scoped collection of recipe ids.
// RecipeIDs never contains duplicates.
type RecipeList struct {
	ID        int64     `json:"list_id"`
	OwnerID   int64     `json:"owner_id"`
	Title     string    `json:"title"`
	RecipeIDs []int64   `json:"recipe_ids"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the RecipeList model.
func (l RecipeList) TableName() string {
	return "recipe_lists"
}

// IDList is a list of recipe ids that also accepts a single bare integer.
type IDList []int64

// UnmarshalJSON accepts `5` as well as `[5, 6]`.
func (l *IDList) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] != '[' {
		var id int64
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return err
		}
		*l = IDList{id}
		return nil
	}

	var ids []int64
	if err := json.Unmarshal(trimmed, &ids); err != nil {
		return err
	}
	*l = ids
	return nil
}

// ListRequest is the body of list create and update routes.
// A nil field was absent from the request.
type ListRequest struct {
	RecipeIDs *IDList `json:"recipe_ids"`
	Title     *string `json:"title"`
	Public    *bool   `json:"public"`
}

// IsEmpty reports whether no field was provided.
func (r ListRequest) IsEmpty() bool {
	return r.RecipeIDs == nil && r.Title == nil && r.Public == nil
}
