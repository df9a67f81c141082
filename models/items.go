// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ItemKind selects which per-user item collection is addressed.
type ItemKind string

const (
	ItemKindPantry  ItemKind = "pantry"
	ItemKindGrocery ItemKind = "grocery"
)

// MaxItemNameLength bounds item names in pantry and grocery lists.
const MaxItemNameLength = 100

var ErrAmountNotNumeric = errors.New("amount is not numeric")

// Item is a single named quantity in a pantry or grocery list.
type Item struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Units  string  `json:"units"`
}

// ItemInput is a single change submitted by the client. Amount is kept raw
// because clients send both numbers and numeric strings.
type ItemInput struct {
	Name   string          `json:"name"`
	Amount json.RawMessage `json:"amount"`
	Units  *string         `json:"units"`
}

// ParseAmount decodes Amount as a JSON number or a numeric string.
// A missing amount is zero.
func (i ItemInput) ParseAmount() (float64, error) {
	raw := strings.TrimSpace(string(i.Amount))
	if raw == "" || raw == "null" {
		return 0, nil
	}

	var number float64
	if err := json.Unmarshal(i.Amount, &number); err == nil {
		return number, nil
	}

	var text string
	if err := json.Unmarshal(i.Amount, &text); err != nil {
		return 0, ErrAmountNotNumeric
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, ErrAmountNotNumeric
	}

	return number, nil
}

// ItemsUpdate is the request body of the pantry and grocery update routes.
// A nil Items means the key was absent.
type ItemsUpdate struct {
	Items *[]ItemInput `json:"items"`
}

// ItemChange is a validated [ItemInput].
type ItemChange struct {
	Name   string
	Amount float64
	Units  string
}

// IngredientSearch is a page of distinct ingredient names.
type IngredientSearch struct {
	Ingredients []string
	Pagination  Pagination
}
