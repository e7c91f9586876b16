package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// WorkoutRepository provides access to the workout catalog.
type WorkoutRepository struct {
	workouts []*entities.Workout
}

func NewWorkoutRepository(path string) (*WorkoutRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Workouts []*entities.Workout `json:"workouts"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workouts JSON: %w", err)
	}

	return &WorkoutRepository{workouts: wrapper.Workouts}, nil
}

func (r *WorkoutRepository) GetByID(id string) (*entities.Workout, error) {
	for _, w := range r.workouts {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *WorkoutRepository) GetByCategory(category string) []*entities.Workout {
	var out []*entities.Workout
	for _, w := range r.workouts {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}
