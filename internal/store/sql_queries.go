// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-meal-planner/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `user_id, email, username, password_hash, profile_image, admin, created_at, updated_at`

	createUser = `INSERT INTO users (email, username, password_hash)
    VALUES ($1, $2, $3)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updateUserEmail = `UPDATE users SET email = $1, updated_at = NOW() WHERE user_id = $2;`

	updateUserPassword = `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE user_id = $2;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`
)

const (
	recipeColumns = `recipe_id, name, author_name, description, recipe_category, keywords,
    cook_time, prep_time, total_time, date_published, aggregated_rating, review_count,
    recipe_servings, recipe_yield, recipe_ingredient_quantities, recipe_ingredient_parts,
    recipe_instructions, nutrition_facts, images, ingredients`

	getRecipe = `SELECT ` + recipeColumns + `
    FROM recipes
    WHERE recipe_id = $1;`

	recipeExists = `SELECT EXISTS (SELECT 1 FROM recipes WHERE recipe_id = $1);`

	deleteRecipe = `DELETE FROM recipes WHERE recipe_id = $1;`

	insertRecipe = `INSERT INTO recipes (name, author_name, description, recipe_category, keywords,
    cook_time, prep_time, total_time, date_published, aggregated_rating, review_count,
    recipe_servings, recipe_yield, recipe_ingredient_quantities, recipe_ingredient_parts,
    recipe_instructions, nutrition_facts, images, ingredients)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    RETURNING recipe_id;`

	getRecommendationCandidates = `SELECT recipe_id, name, images, aggregated_rating, recipe_category, ingredients
    FROM recipes
    WHERE ingredients <> '' AND images <> '';`

	countIngredients = `SELECT COUNT(DISTINCT TRIM(token))
    FROM recipes, regexp_split_to_table(ingredients, ',') AS token
    WHERE TRIM(token) ILIKE $1;`

	searchIngredientRecipes = `SELECT DISTINCT ingredients
    FROM recipes
    WHERE ingredients ILIKE $1
    ORDER BY ingredients
    LIMIT $2 OFFSET $3;`
)

const (
	listColumns = `list_id, owner_id, title, recipe_ids, is_public, created_at, updated_at`

	getListIDs = `SELECT list_id FROM recipe_lists WHERE owner_id = $1 ORDER BY list_id;`

	createList = `INSERT INTO recipe_lists (owner_id, title, recipe_ids, is_public)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + listColumns + `;`

	getList = `SELECT ` + listColumns + `
    FROM recipe_lists
    WHERE list_id = $1;`

	getOwnedList = `SELECT ` + listColumns + `
    FROM recipe_lists
    WHERE list_id = $1 AND owner_id = $2;`

	getListByTitle = `SELECT ` + listColumns + `
    FROM recipe_lists
    WHERE owner_id = $1 AND title = $2
    ORDER BY list_id
    LIMIT 1;`

	updateList = `UPDATE recipe_lists
    SET title = $1, recipe_ids = $2, is_public = $3, updated_at = NOW()
    WHERE list_id = $4 AND owner_id = $5;`

	deleteList = `DELETE FROM recipe_lists WHERE list_id = $1 AND owner_id = $2;`

	countPublicLists = `SELECT COUNT(*) FROM recipe_lists WHERE is_public AND title ILIKE $1;`

	searchPublicLists = `SELECT ` + listColumns + `
    FROM recipe_lists
    WHERE is_public AND title ILIKE $1
    ORDER BY list_id
    LIMIT $2 OFFSET $3;`
)

// Item tables are selected from this closed set, never from user input.
var itemTables = map[models.ItemKind]string{
	models.ItemKindPantry:  "pantry",
	models.ItemKindGrocery: "grocery_list",
}

func getItemsQuery(table string) string {
	return fmt.Sprintf(`SELECT items FROM %s WHERE user_id = $1;`, table)
}

func saveItemsQuery(table string) string {
	return fmt.Sprintf(`INSERT INTO %s (user_id, items) VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET items = EXCLUDED.items;`, table)
}

const (
	addMeal = `INSERT INTO meal_plans (user_id, meal_date, meal_type, recipe_id)
    VALUES ($1, $2, $3, $4);`

	deleteMeal = `DELETE FROM meal_plans WHERE user_id = $1 AND meal_date = $2 AND meal_type = $3;`
)

const (
	userRecipeColumns = `id, user_id, submitted, recipe_data, created_at`

	listUserRecipes = `SELECT ` + userRecipeColumns + `
    FROM user_made_recipes
    WHERE user_id = $1
    ORDER BY id DESC;`

	listSubmittedUserRecipes = `SELECT ` + userRecipeColumns + `
    FROM user_made_recipes
    WHERE submitted
    ORDER BY id DESC;`

	getOwnedUserRecipe = `SELECT ` + userRecipeColumns + `
    FROM user_made_recipes
    WHERE id = $1 AND user_id = $2;`

	getUserRecipe = `SELECT ` + userRecipeColumns + `
    FROM user_made_recipes
    WHERE id = $1;`

	createUserRecipe = `INSERT INTO user_made_recipes (user_id, recipe_data, submitted)
    VALUES ($1, $2, FALSE)
    RETURNING id;`

	updateUserRecipe = `UPDATE user_made_recipes SET recipe_data = $1 WHERE id = $2 AND user_id = $3;`

	deleteUserRecipe = `DELETE FROM user_made_recipes WHERE id = $1 AND user_id = $2;`

	deleteApprovedUserRecipe = `DELETE FROM user_made_recipes WHERE id = $1;`
)

var recipeSummaryColumns = []string{
	"recipe_id", "name", "author_name", "description", "recipe_category",
	"aggregated_rating", "review_count", "images",
}

// recipeSearchPredicate returns the WHERE clause for a catalog search.
// A nil predicate means no filter.
func recipeSearchPredicate(search models.RecipeSearch) sq.Sqlizer {
	if search.Query == "" {
		return nil
	}

	pattern := likePattern(search.Query)
	parts := sq.Expr("recipe_ingredient_parts::text ILIKE ?", pattern)

	switch search.Scope {
	case models.SearchByName:
		return sq.ILike{"name": pattern}
	case models.SearchByIngredients:
		return parts
	case models.SearchByCategory:
		return sq.ILike{"recipe_category": pattern}
	default:
		return sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
			parts,
		}
	}
}

func buildSearchRecipesQuery(search models.RecipeSearch, page models.PageRequest) (string, []any, error) {
	builder := psql.Select(recipeSummaryColumns...).
		From("recipes").
		OrderBy("recipe_id").
		Limit(uint64(page.PerPage)).
		Offset(uint64(page.Offset()))

	if predicate := recipeSearchPredicate(search); predicate != nil {
		builder = builder.Where(predicate)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountRecipesQuery(search models.RecipeSearch) (string, []any, error) {
	builder := psql.Select("COUNT(*)").From("recipes")

	if predicate := recipeSearchPredicate(search); predicate != nil {
		builder = builder.Where(predicate)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRandomRecipesQuery(filter models.RandomFilter) (string, []any, error) {
	builder := psql.Select(recipeSummaryColumns...).
		From("recipes").
		OrderBy("random()").
		Limit(uint64(filter.Count))

	if filter.WithImages {
		builder = builder.Where(sq.NotEq{"images": ""})
	}
	if len(filter.Exclude) > 0 {
		builder = builder.Where(sq.NotEq{"recipe_id": filter.Exclude})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateRecipeQuery builds an UPDATE whose SET clause contains exactly
// the non-nil fields of update. Column names come from this function only.
func buildUpdateRecipeQuery(id int64, update models.RecipeUpdate) (string, []any, error) {
	builder := psql.Update("recipes").Where(sq.Eq{"recipe_id": id})
	fields := 0

	setText := func(column string, value *string) {
		if value != nil {
			builder = builder.Set(column, *value)
			fields++
		}
	}
	setText("name", update.Name)
	setText("author_name", update.AuthorName)
	setText("description", update.Description)
	setText("recipe_category", update.Category)
	setText("keywords", update.Keywords)
	setText("cook_time", update.CookTime)
	setText("prep_time", update.PrepTime)
	setText("total_time", update.TotalTime)
	setText("recipe_servings", update.Servings)
	setText("recipe_yield", update.Yield)
	setText("images", update.Images)
	setText("ingredients", update.Ingredients)

	if update.DatePublished != nil {
		builder = builder.Set("date_published", sq.Expr("?::timestamptz", *update.DatePublished))
		fields++
	}
	if update.Rating != nil {
		builder = builder.Set("aggregated_rating", *update.Rating)
		fields++
	}
	if update.ReviewCount != nil {
		builder = builder.Set("review_count", *update.ReviewCount)
		fields++
	}

	setJSON := func(column string, value any) error {
		encoded, err := encodeJSON(value)
		if err != nil {
			return err
		}
		builder = builder.Set(column, encoded)
		fields++
		return nil
	}
	if update.IngredientQuantities != nil {
		if err := setJSON("recipe_ingredient_quantities", *update.IngredientQuantities); err != nil {
			return "", nil, err
		}
	}
	if update.IngredientParts != nil {
		if err := setJSON("recipe_ingredient_parts", *update.IngredientParts); err != nil {
			return "", nil, err
		}
	}
	if update.Instructions != nil {
		if err := setJSON("recipe_instructions", *update.Instructions); err != nil {
			return "", nil, err
		}
	}
	if update.NutritionFacts != nil {
		builder = builder.Set("nutrition_facts", string(*update.NutritionFacts))
		fields++
	}

	if fields == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetMealPlanQuery(userID int64, date *time.Time) (string, []any, error) {
	builder := psql.Select(
		"mp.meal_date", "mp.meal_type", "mp.recipe_id",
		"r.name", "r.description", "r.cook_time", "r.images",
	).
		From("meal_plans mp").
		Join("recipes r ON r.recipe_id = mp.recipe_id").
		Where(sq.Eq{"mp.user_id": userID}).
		OrderBy("mp.meal_date", "CASE mp.meal_type WHEN 'breakfast' THEN 1 WHEN 'lunch' THEN 2 WHEN 'dinner' THEN 3 END")

	if date != nil {
		builder = builder.Where(sq.Eq{"mp.meal_date": *date})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSetSubmittedQuery scopes the update to ownerID unless anyOwner is set.
func buildSetSubmittedQuery(change models.SubmissionChange) (string, []any, error) {
	builder := psql.Update("user_made_recipes").
		Set("submitted", change.Submitted).
		Where(sq.Eq{"id": change.ID})

	if !change.AnyOwner {
		builder = builder.Where(sq.Eq{"user_id": change.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
