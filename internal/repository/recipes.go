package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// RecipeRepository provides access to the recipe catalog.
type RecipeRepository struct {
	recipes []*entities.Recipe
	byID    map[string]*entities.Recipe
}

// NewRecipeRepository loads the recipe catalog from the given JSON file.
func NewRecipeRepository(path string) (*RecipeRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Recipes []*entities.Recipe `json:"recipes"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipes JSON: %w", err)
	}

	byID := make(map[string]*entities.Recipe, len(wrapper.Recipes))
	for _, rec := range wrapper.Recipes {
		byID[rec.ID] = rec
	}

	return &RecipeRepository{recipes: wrapper.Recipes, byID: byID}, nil
}

// GetByID retrieves a recipe by its identifier.
func (r *RecipeRepository) GetByID(id string) (*entities.Recipe, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return rec, nil
}

// GetByCategory retrieves all recipes of a category, in catalog order.
func (r *RecipeRepository) GetByCategory(category string) []*entities.Recipe {
	var out []*entities.Recipe
	for _, rec := range r.recipes {
		if rec.Category == category {
			out = append(out, rec)
		}
	}
	return out
}
