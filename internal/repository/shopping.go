package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// ShoppingRepository provides access to the shopping list catalog.
type ShoppingRepository struct {
	categories []*entities.ShoppingCategory
}

func NewShoppingRepository(path string) (*ShoppingRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Categories []*entities.ShoppingCategory `json:"categories"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping JSON: %w", err)
	}

	return &ShoppingRepository{categories: wrapper.Categories}, nil
}

func (r *ShoppingRepository) Categories() []*entities.ShoppingCategory {
	return r.categories
}

func (r *ShoppingRepository) GetCategory(id string) (*entities.ShoppingCategory, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrItemNotFound
}

// TotalItems counts all items across categories.
func (r *ShoppingRepository) TotalItems() int {
	n := 0
	for _, c := range r.categories {
		n += len(c.Items)
	}
	return n
}
