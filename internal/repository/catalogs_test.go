package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingRepository(t *testing.T) {
	repo, err := NewShoppingRepository("../../assets/data/shopping.json")
	require.NoError(t, err)

	assert.Len(t, repo.Categories(), 7)
	assert.Greater(t, repo.TotalItems(), 40)

	cat, err := repo.GetCategory("vegetables")
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Items)

	_, err = repo.GetCategory("gadgets")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestPreparationRepository(t *testing.T) {
	repo, err := NewPreparationRepository("../../assets/data/preparation.json")
	require.NoError(t, err)

	assert.Len(t, repo.GetAll(), 8)
	// One item (the cabbage salad) is optional.
	assert.Equal(t, 7, repo.RequiredCount())
}

func TestWorkoutRepository(t *testing.T) {
	repo, err := NewWorkoutRepository("../../assets/data/workouts.json")
	require.NoError(t, err)

	for _, category := range []string{"practices", "workouts", "cardio", "procedures", "sleep"} {
		assert.NotEmpty(t, repo.GetByCategory(category), "category %s", category)
	}
	assert.Empty(t, repo.GetByCategory("swimming"))
}

func TestInfoRepository(t *testing.T) {
	repo, err := NewInfoRepository("../../assets/data/info.json")
	require.NoError(t, err)

	for _, category := range []string{"intro", "basics", "drinks", "supplements", "food", "health", "final"} {
		assert.NotEmpty(t, repo.GetByCategory(category), "category %s", category)
	}
}
