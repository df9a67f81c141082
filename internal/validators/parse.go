// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-meal-planner/models"
)

var allowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// ParseItemChanges validates the items of a pantry or grocery update.
//
// Amounts are JSON numbers or numeric strings; a missing amount is zero.
// Names are kept as sent, since they are the exact merge key. They are only
// checked when the amount is non-zero, because a zero amount removes the
// item; a name that is blank after trimming is rejected.
func ParseItemChanges(update models.ItemsUpdate) ([]models.ItemChange, error) {
	if update.Items == nil {
		return nil, invalid(ReasonNoItems)
	}

	changes := make([]models.ItemChange, 0, len(*update.Items))
	for _, item := range *update.Items {
		name := item.Name

		amount, err := item.ParseAmount()
		if err != nil || amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return nil, invalidf("Invalid amount for item '%s'", name)
		}

		if trimmed := strings.TrimSpace(name); amount != 0 && (trimmed == "" || len(trimmed) > models.MaxItemNameLength) {
			return nil, invalid(ReasonInvalidItemName)
		}

		units := ""
		if item.Units != nil {
			units = *item.Units
		}

		changes = append(changes, models.ItemChange{Name: name, Amount: amount, Units: units})
	}

	return changes, nil
}

// ParseMealDate parses a YYYY-MM-DD meal date.
func ParseMealDate(s string) (time.Time, error) {
	date, err := time.Parse(models.MealDateLayout, s)
	if err != nil {
		return time.Time{}, invalid(ReasonInvalidMealDate)
	}
	return date, nil
}

// ParseMealSlot validates the (date, meal type) pair of a delete request.
func ParseMealSlot(date, mealType string) (models.MealSlot, error) {
	if date == "" || mealType == "" {
		return models.MealSlot{}, invalid(ReasonMissingSlotFields)
	}

	return parseSlot(date, mealType)
}

// ParseMealPlanEntry validates an add request. The recipe id may be sent as
// a number or a numeric string and must be a positive integer.
func ParseMealPlanEntry(request models.MealPlanRequest) (models.MealPlanEntry, error) {
	rawID := bytes.TrimSpace(request.RecipeID)
	if request.MealDate == "" || request.MealType == "" || len(rawID) == 0 || bytes.Equal(rawID, []byte("null")) {
		return models.MealPlanEntry{}, invalid(ReasonMissingMealFields)
	}

	slot, err := parseSlot(request.MealDate, request.MealType)
	if err != nil {
		return models.MealPlanEntry{}, err
	}

	recipeID, err := parsePositiveID(rawID)
	if err != nil {
		return models.MealPlanEntry{}, err
	}

	return models.MealPlanEntry{
		MealDate: slot.Date,
		MealType: slot.Type,
		RecipeID: recipeID,
	}, nil
}

func parseSlot(date, mealType string) (models.MealSlot, error) {
	t := models.MealType(mealType)
	if !t.Valid() {
		return models.MealSlot{}, invalid(ReasonInvalidMealType)
	}

	d, err := ParseMealDate(date)
	if err != nil {
		return models.MealSlot{}, err
	}

	return models.MealSlot{Date: d, Type: t}, nil
}

func parsePositiveID(raw []byte) (int64, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		raw = []byte(strings.TrimSpace(text))
	}

	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid(ReasonInvalidMealRecipe)
	}

	return id, nil
}

// ParseDatePublished accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseDatePublished(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(models.MealDateLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, invalid("DatePublished must be RFC 3339 or YYYY-MM-DD")
}

// ImageExtension returns the lower-cased extension of an uploaded file
// name, or a validation error when the name is empty or the type is not an
// accepted image format.
func ImageExtension(filename string) (string, error) {
	name := strings.TrimSpace(filename)
	if name == "" {
		return "", invalid(ReasonNoFileSelected)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", invalid(ReasonUnsupportedImage)
	}

	return ext, nil
}

// RequireQuery returns a validation error with reason when q is blank.
func RequireQuery(q, reason string) (string, error) {
	trimmed := strings.TrimSpace(q)
	if trimmed == "" {
		return "", invalid(reason)
	}
	return trimmed, nil
}
