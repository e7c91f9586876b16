package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipesPath = "../../assets/data/recipes.json"

func TestRecipeRepository_Load(t *testing.T) {
	repo, err := NewRecipeRepository(recipesPath)
	require.NoError(t, err)

	for _, category := range []string{"breakfasts", "dinners", "garnish", "sauces", "extra"} {
		assert.NotEmpty(t, repo.GetByCategory(category), "category %s", category)
	}
	assert.Empty(t, repo.GetByCategory("desserts"))
}

func TestRecipeRepository_GetByID(t *testing.T) {
	repo, err := NewRecipeRepository(recipesPath)
	require.NoError(t, err)

	rec, err := repo.GetByID("omelet")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Name)
	assert.NotEmpty(t, rec.Ingredients)
	assert.NotEmpty(t, rec.Steps)

	_, err = repo.GetByID("nonexistent")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRecipeRepository_MissingFile(t *testing.T) {
	_, err := NewRecipeRepository("testdata/nope.json")
	assert.Error(t, err)
}
