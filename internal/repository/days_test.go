package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

const daysPath = "../../assets/data/days.json"

func TestDayRepository_Load(t *testing.T) {
	repo, err := NewDayRepository(daysPath)
	require.NoError(t, err)

	assert.Len(t, repo.GetAll(), entities.CourseLengthDays)
	for i, day := range repo.GetAll() {
		assert.Equal(t, i+1, day.Number)
		assert.NotEmpty(t, day.Title)
		assert.NotEmpty(t, day.Morning)
		assert.NotEmpty(t, day.Supplements)
		assert.Positive(t, day.WaterGoalML)
		assert.Positive(t, day.StepsGoal)
	}
}

func TestDayRepository_GetByNumber(t *testing.T) {
	repo, err := NewDayRepository(daysPath)
	require.NoError(t, err)

	day, err := repo.GetByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 1, day.Number)

	_, err = repo.GetByNumber(0)
	assert.ErrorIs(t, err, ErrInvalidDay)
	_, err = repo.GetByNumber(21)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestDayRepository_KefirDays(t *testing.T) {
	repo, err := NewDayRepository(daysPath)
	require.NoError(t, err)

	kefirDays := map[int]bool{4: true, 8: true, 11: true, 15: true, 18: true}
	for _, day := range repo.GetAll() {
		assert.Equal(t, kefirDays[day.Number], day.KefirDay, "day %d", day.Number)
		if day.KefirDay {
			assert.True(t, day.Meals.Kefir)
			assert.Len(t, day.Meals.Schedule, 4)
			assert.Nil(t, day.Meals.Lunch)
		}
	}
}

func TestDayRepository_GoalProgression(t *testing.T) {
	repo, err := NewDayRepository(daysPath)
	require.NoError(t, err)

	for _, day := range repo.GetAll() {
		switch {
		case day.Number >= 15:
			assert.Equal(t, 20000, day.StepsGoal, "day %d", day.Number)
		case day.Number >= 8:
			assert.Equal(t, 15000, day.StepsGoal, "day %d", day.Number)
		default:
			assert.Equal(t, 10000, day.StepsGoal, "day %d", day.Number)
		}

		// The plank joins the program on day 8 and grows by 10s per day.
		if day.Number < 8 {
			assert.Zero(t, day.PlankSeconds, "day %d", day.Number)
		} else {
			assert.Equal(t, 60+(day.Number-8)*10, day.PlankSeconds, "day %d", day.Number)
		}
	}
}

func TestDayRepository_RequiredTaskIDs(t *testing.T) {
	repo, err := NewDayRepository(daysPath)
	require.NoError(t, err)

	day, err := repo.GetByNumber(1)
	require.NoError(t, err)

	ids := day.RequiredTaskIDs()
	assert.Contains(t, ids, "morning-1-1")
	assert.Contains(t, ids, "ex-1-1")
	assert.Contains(t, ids, "eve-1-3")
	// The evening mantra is optional and never gates day completion.
	assert.NotContains(t, ids, "eve-1-4")
}

func TestDayRepository_MealPlanRecipesExist(t *testing.T) {
	days, err := NewDayRepository(daysPath)
	require.NoError(t, err)
	recipes, err := NewRecipeRepository("../../assets/data/recipes.json")
	require.NoError(t, err)

	checkMeal := func(dayNum int, meal *entities.DayMeal) {
		if meal == nil || meal.RecipeID == "" {
			return
		}
		_, err := recipes.GetByID(meal.RecipeID)
		assert.NoError(t, err, "day %d references recipe %q", dayNum, meal.RecipeID)
	}

	for _, day := range days.GetAll() {
		checkMeal(day.Number, day.Meals.Lunch)
		checkMeal(day.Number, day.Meals.Dinner)
	}
}
