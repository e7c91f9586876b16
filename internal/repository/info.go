package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// InfoRepository provides access to the informational content catalog.
type InfoRepository struct {
	items []*entities.InfoItem
}

func NewInfoRepository(path string) (*InfoRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Items []*entities.InfoItem `json:"items"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal info JSON: %w", err)
	}

	return &InfoRepository{items: wrapper.Items}, nil
}

func (r *InfoRepository) GetByID(id string) (*entities.InfoItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *InfoRepository) GetByCategory(category string) []*entities.InfoItem {
	var out []*entities.InfoItem
	for _, item := range r.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
