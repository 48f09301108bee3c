package recipe

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sustainable-bao-backend/domain"
	"sustainable-bao-backend/entities"
	"sustainable-bao-backend/pkg/grocery"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecommendations(ctx context.Context, userID string) (domain.RecommendationsResponse, error)
		GetLeftovers(ctx context.Context, recipeID string, userID string) ([]domain.LeftoverRow, error)
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		groceryRepository grocery.GroceryRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, groceryRepository grocery.GroceryRepository) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		groceryRepository: groceryRepository,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		response = append(response, toRecipeResponse(r))
	}
	return response, nil
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error) {
	ingredients := make([]domain.RecipeIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, domain.RecipeIngredient{
			IngredientName: ing.IngredientName,
			Quantity:       ing.Quantity,
		})
	}

	raw, err := json.Marshal(ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:                  uuid.New(),
		Name:                req.Name,
		Ingredients:         string(raw),
		CookingTimeMinutes:  req.CookingTimeMinutes,
		SustainabilityNotes: req.SustainabilityNotes,
	}

	if err := s.recipeRepository.AddRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	_, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

// GetRecommendations matches the catalog against the user's groceries.
// Fully matched recipes land in Matched, partial matches in Recommended,
// and recipes with no matched ingredient are dropped from both lists.
func (s *recipeService) GetRecommendations(ctx context.Context, userID string) (domain.RecommendationsResponse, error) {
	groceries, err := s.groceryRepository.GetGroceryItems(ctx, userID)
	if err != nil {
		return domain.RecommendationsResponse{}, err
	}

	recipes, err := s.recipeRepository.GetAllRecipes(ctx)
	if err != nil {
		return domain.RecommendationsResponse{}, err
	}

	response := domain.RecommendationsResponse{
		Matched:     []domain.RecipeMatch{},
		Recommended: []domain.RecipeMatch{},
	}

	for _, match := range MatchRecipes(groceries, recipes) {
		switch match.Status {
		case domain.MatchStatusFull:
			response.Matched = append(response.Matched, match)
		case domain.MatchStatusPartial:
			response.Recommended = append(response.Recommended, match)
		}
	}

	return response, nil
}

func (s *recipeService) GetLeftovers(ctx context.Context, recipeID string, userID string) ([]domain.LeftoverRow, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	groceries, err := s.groceryRepository.GetGroceryItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	return Leftovers(groceries, ParseIngredients(recipe.Ingredients)), nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:                  recipe.ID.String(),
		Name:                recipe.Name,
		Ingredients:         ParseIngredients(recipe.Ingredients),
		CookingTimeMinutes:  recipe.CookingTimeMinutes,
		SustainabilityNotes: recipe.SustainabilityNotes,
		CreatedAt:           recipe.CreatedAt,
	}
}
