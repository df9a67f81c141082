// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/models"
)

const (
	recommendationCount = 12
	recommendationPool  = 30
)

const (
	msgNoPantryItems = "No pantry items found, showing random recipes"
	msgEmptyPantry   = "Empty pantry, showing random recipes"
)

type recommendationService struct {
	recipeRepository store.RecipeRepository
	pantryRepository store.ItemRepository

	// rnd is not safe for concurrent use on its own.
	mu  sync.Mutex
	rnd *rand.Rand

	logger *logger.Logger
}

func NewRecommendationService(recipes store.RecipeRepository, pantry store.ItemRepository, rnd *rand.Rand, logger *logger.Logger) RecommendationService {
	return &recommendationService{
		recipeRepository: recipes,
		pantryRepository: pantry,
		rnd:              rnd,
		logger:           logger,
	}
}

// Recommend scores recipes by how many pantry items appear in their
// ingredient names, keeps some variety among the best matches and pads
// short results with random recipes that have pictures.
func (s *recommendationService) Recommend(ctx context.Context, userID int64) (models.Recommendations, error) {
	items, err := s.pantryRepository.GetItems(ctx, userID)
	if errors.Is(err, store.ErrItemsNotFound) {
		return s.randomOnly(ctx, msgNoPantryItems)
	}
	if err != nil {
		return models.Recommendations{}, fmt.Errorf("pantry lookup failed: %w", err)
	}
	if len(items) == 0 {
		return s.randomOnly(ctx, msgEmptyPantry)
	}

	pantry := pantryNames(items)

	candidates, err := s.recipeRepository.RecommendationCandidates(ctx)
	if err != nil {
		return models.Recommendations{}, fmt.Errorf("recommendation candidates failed: %w", err)
	}

	scored := scoreRecipes(candidates, pantry)
	chosen := s.pickVariety(scored)

	if missing := recommendationCount - len(chosen); missing > 0 {
		exclude := make([]int64, 0, len(chosen))
		for _, r := range chosen {
			exclude = append(exclude, r.ID)
		}

		filler, err := s.recipeRepository.RandomRecipes(ctx, models.RandomFilter{Count: missing, WithImages: true, Exclude: exclude})
		if err != nil {
			return models.Recommendations{}, fmt.Errorf("random filler failed: %w", err)
		}
		for _, r := range filler {
			chosen = append(chosen, recommended(r, 0))
		}
	}

	logger.FromContext(ctx).Debug().Str("func", "*recommendationService.Recommend").
		Int("scored", len(scored)).Int("returned", len(chosen)).Msg("recommendations built")

	return models.Recommendations{Recipes: chosen, PantryItems: pantry}, nil
}

func (s *recommendationService) randomOnly(ctx context.Context, message string) (models.Recommendations, error) {
	recipes, err := s.recipeRepository.RandomRecipes(ctx, models.RandomFilter{Count: recommendationCount, WithImages: true})
	if err != nil {
		return models.Recommendations{}, fmt.Errorf("random recipes failed: %w", err)
	}

	result := make([]models.RecommendedRecipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, recommended(r, 0))
	}

	return models.Recommendations{Recipes: result, PantryItems: []string{}, Message: message}, nil
}

// pickVariety expects scored sorted by score.
func (s *recommendationService) pickVariety(scored []models.RecommendedRecipe) []models.RecommendedRecipe {
	switch {
	case len(scored) > recommendationPool:
		top := append([]models.RecommendedRecipe(nil), scored[:recommendationPool]...)
		s.shuffle(top)
		return top[:recommendationCount]
	case len(scored) > recommendationCount:
		s.shuffle(scored)
		return scored[:recommendationCount]
	default:
		return scored
	}
}

func (s *recommendationService) shuffle(recipes []models.RecommendedRecipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rnd.Shuffle(len(recipes), func(i, j int) {
		recipes[i], recipes[j] = recipes[j], recipes[i]
	})
}

// MissingIngredients splits the recipe's ingredient parts into those the
// pantry covers and those it does not.
func (s *recommendationService) MissingIngredients(ctx context.Context, recipeID int64, identity *models.Identity) (models.MissingIngredients, error) {
	recipe, err := s.recipeRepository.GetRecipe(ctx, recipeID)
	if err != nil {
		return models.MissingIngredients{}, err
	}

	ingredients := make([]string, 0, len(recipe.IngredientParts))
	for _, part := range recipe.IngredientParts {
		ingredients = append(ingredients, strings.TrimSpace(part))
	}
	if len(ingredients) == 0 {
		return models.MissingIngredients{}, ErrRecipeHasNoIngredients
	}

	if identity == nil {
		return models.MissingIngredients{
			Missing:  ingredients,
			InPantry: []string{},
			All:      ingredients,
		}, nil
	}

	items, err := s.pantryRepository.GetItems(ctx, identity.UserID)
	if err != nil && !errors.Is(err, store.ErrItemsNotFound) {
		return models.MissingIngredients{}, fmt.Errorf("pantry lookup failed: %w", err)
	}
	pantry := pantryNames(items)

	result := models.MissingIngredients{
		Missing:       []string{},
		InPantry:      []string{},
		All:           ingredients,
		Authenticated: true,
	}
	for _, ingredient := range ingredients {
		if matchesAny(strings.ToLower(ingredient), pantry) {
			result.InPantry = append(result.InPantry, ingredient)
		} else {
			result.Missing = append(result.Missing, ingredient)
		}
	}

	return result, nil
}

// scoreRecipes counts, per recipe, the pantry items that match at least one
// ingredient token. Recipes with no matches are dropped.
func scoreRecipes(candidates []models.Recipe, pantry []string) []models.RecommendedRecipe {
	scored := make([]models.RecommendedRecipe, 0)
	for _, recipe := range candidates {
		tokens := ingredientTokens(recipe.Ingredients)
		if len(tokens) == 0 {
			continue
		}

		matches := 0
		for _, item := range pantry {
			if matchesAny(item, tokens) {
				matches++
			}
		}
		if matches > 0 {
			scored = append(scored, recommended(recipe, matches))
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchCount > scored[j].MatchCount
	})
	return scored
}

// matchesAny reports whether needle and any candidate contain one another.
// Blank strings never match.
func matchesAny(needle string, candidates []string) bool {
	if needle == "" {
		return false
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if strings.Contains(c, needle) || strings.Contains(needle, c) {
			return true
		}
	}
	return false
}

func ingredientTokens(ingredients string) []string {
	if strings.TrimSpace(ingredients) == "" {
		return nil
	}

	parts := strings.Split(ingredients, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if token := strings.ToLower(strings.TrimSpace(p)); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func pantryNames(items []models.Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, strings.ToLower(strings.TrimSpace(item.Name)))
	}
	return names
}

func recommended(r models.Recipe, matches int) models.RecommendedRecipe {
	return models.RecommendedRecipe{
		ID:         r.ID,
		Name:       r.Name,
		Images:     r.Images,
		Rating:     r.Rating,
		Category:   r.Category,
		MatchCount: matches,
	}
}
