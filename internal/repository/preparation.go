package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// PreparationRepository provides access to the pre-course checklist.
type PreparationRepository struct {
	items []*entities.PreparationItem
}

func NewPreparationRepository(path string) (*PreparationRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Items []*entities.PreparationItem `json:"items"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preparation JSON: %w", err)
	}

	return &PreparationRepository{items: wrapper.Items}, nil
}

func (r *PreparationRepository) GetAll() []*entities.PreparationItem {
	return r.items
}

// RequiredCount returns how many checklist items are mandatory.
func (r *PreparationRepository) RequiredCount() int {
	n := 0
	for _, item := range r.items {
		if item.Required {
			n++
		}
	}
	return n
}
