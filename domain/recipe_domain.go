package domain

import (
	"errors"
	"time"
)

const (
	MatchStatusFull      = "full"
	MatchStatusPartial   = "partial"
	MatchStatusUnmatched = "unmatched"
)

var (
	MessageSuccessAddRecipe       = "recipe added successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessRecommendations = "recipe recommendations retrieved successfully"
	MessageSuccessLeftovers       = "leftovers calculated successfully"

	MessageFailedAddRecipe       = "failed to add recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedRecommendations = "failed to retrieve recipe recommendations"
	MessageFailedLeftovers       = "failed to calculate leftovers"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	// RecipeIngredient mirrors the JSON objects stored in a recipe's
	// ingredient list. The name doubles as the join key against grocery
	// item names.
	RecipeIngredient struct {
		IngredientName string  `json:"ingredient_name"`
		Quantity       float64 `json:"quantity"`
	}

	AddRecipeRequest struct {
		Name                string                    `json:"name" validate:"required,max=255"`
		Ingredients         []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		CookingTimeMinutes  int                       `json:"cooking_time_minutes" validate:"gte=0"`
		SustainabilityNotes string                    `json:"sustainability_notes"`
	}

	RecipeIngredientRequest struct {
		IngredientName string  `json:"ingredient_name" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"gte=0"`
	}

	RecipeResponse struct {
		ID                  string             `json:"id"`
		Name                string             `json:"name"`
		Ingredients         []RecipeIngredient `json:"ingredients"`
		CookingTimeMinutes  int                `json:"cooking_time_minutes"`
		SustainabilityNotes string             `json:"sustainability_notes"`
		CreatedAt           time.Time          `json:"created_at"`
	}

	MatchedIngredient struct {
		Name              string  `json:"name"`
		AvailableQuantity float64 `json:"available_qty"`
		LeftoverQuantity  float64 `json:"leftover_qty"`
	}

	ToBuyIngredient struct {
		Name             string  `json:"name"`
		RequiredQuantity float64 `json:"required_qty"`
	}

	RecipeMatch struct {
		RecipeID            string              `json:"recipe_id"`
		RecipeName          string              `json:"recipe_name"`
		Status              string              `json:"status"`
		CookingTimeMinutes  int                 `json:"cooking_time_minutes"`
		SustainabilityNotes string              `json:"sustainability_notes"`
		MatchedIngredients  []MatchedIngredient `json:"matched_ingredients"`
		ToBuyIngredients    []ToBuyIngredient   `json:"to_buy_ingredients"`
	}

	RecommendationsResponse struct {
		Matched     []RecipeMatch `json:"matched"`
		Recommended []RecipeMatch `json:"recommended"`
	}

	LeftoverRow struct {
		IngredientName    string  `json:"ingredient_name"`
		RequiredQuantity  float64 `json:"required_quantity"`
		AvailableQuantity float64 `json:"available_quantity"`
		LeftoverQuantity  float64 `json:"leftover_quantity"`
	}
)
