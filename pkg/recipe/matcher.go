package recipe

import (
	"encoding/json"

	"sustainable-bao-backend/domain"
	"sustainable-bao-backend/entities"
)

// Availability aggregates grocery rows by item name, summing quantities.
// Names are joined exactly as stored; "Milk" and "milk" are distinct keys.
func Availability(items []*entities.GroceryItem) map[string]float64 {
	available := make(map[string]float64, len(items))
	for _, item := range items {
		available[item.Name] += item.Quantity
	}
	return available
}

// ParseIngredients decodes a recipe's stored ingredient list. A malformed
// list decodes to nil, which downstream treats as a recipe that matches
// nothing rather than an error.
func ParseIngredients(raw string) []domain.RecipeIngredient {
	var ingredients []domain.RecipeIngredient
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil
	}
	return ingredients
}

// MatchRecipes classifies every recipe against the user's groceries. An
// ingredient is matched when its name is present in the availability map at
// all, regardless of whether the quantity suffices. The result is a pure
// function of its inputs: no stock is deducted and repeated calls yield
// identical output.
func MatchRecipes(groceries []*entities.GroceryItem, recipes []*entities.Recipe) []domain.RecipeMatch {
	available := Availability(groceries)

	results := make([]domain.RecipeMatch, 0, len(recipes))
	for _, r := range recipes {
		match := domain.RecipeMatch{
			RecipeID:            r.ID.String(),
			RecipeName:          r.Name,
			Status:              domain.MatchStatusUnmatched,
			CookingTimeMinutes:  r.CookingTimeMinutes,
			SustainabilityNotes: r.SustainabilityNotes,
		}

		for _, ing := range mergeDuplicates(ParseIngredients(r.Ingredients)) {
			availableQty, ok := available[ing.IngredientName]
			if !ok {
				match.ToBuyIngredients = append(match.ToBuyIngredients, domain.ToBuyIngredient{
					Name:             ing.IngredientName,
					RequiredQuantity: ing.Quantity,
				})
				continue
			}

			match.MatchedIngredients = append(match.MatchedIngredients, domain.MatchedIngredient{
				Name:              ing.IngredientName,
				AvailableQuantity: availableQty,
				LeftoverQuantity:  leftover(availableQty, ing.Quantity),
			})
		}

		switch {
		case len(match.MatchedIngredients) > 0 && len(match.ToBuyIngredients) == 0:
			match.Status = domain.MatchStatusFull
		case len(match.MatchedIngredients) > 0:
			match.Status = domain.MatchStatusPartial
		}

		results = append(results, match)
	}

	return results
}

// Leftovers computes the per-ingredient leftover rows for one recipe. An
// absent grocery name counts as zero availability and the leftover quantity
// floors at zero.
func Leftovers(groceries []*entities.GroceryItem, ingredients []domain.RecipeIngredient) []domain.LeftoverRow {
	available := Availability(groceries)

	merged := mergeDuplicates(ingredients)
	rows := make([]domain.LeftoverRow, 0, len(merged))
	for _, ing := range merged {
		availableQty := available[ing.IngredientName]
		rows = append(rows, domain.LeftoverRow{
			IngredientName:    ing.IngredientName,
			RequiredQuantity:  ing.Quantity,
			AvailableQuantity: availableQty,
			LeftoverQuantity:  leftover(availableQty, ing.Quantity),
		})
	}

	return rows
}

// mergeDuplicates folds repeated ingredient names into a single additive
// requirement, keeping first-occurrence order.
func mergeDuplicates(ingredients []domain.RecipeIngredient) []domain.RecipeIngredient {
	merged := make([]domain.RecipeIngredient, 0, len(ingredients))
	index := make(map[string]int, len(ingredients))
	for _, ing := range ingredients {
		if i, ok := index[ing.IngredientName]; ok {
			merged[i].Quantity += ing.Quantity
			continue
		}
		index[ing.IngredientName] = len(merged)
		merged = append(merged, ing)
	}
	return merged
}

func leftover(available, required float64) float64 {
	if available < required {
		return 0
	}
	return available - required
}
