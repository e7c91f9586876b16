// Package repository provides read-only access to the static course
// catalogs, loaded once from JSON assets at startup.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

var (
	ErrDayNotFound  = errors.New("day not found")
	ErrInvalidDay   = errors.New("invalid day number")
	ErrItemNotFound = errors.New("catalog item not found")
)

// DayRepository provides access to the 20 course days.
type DayRepository struct {
	days []*entities.Day
}

// NewDayRepository loads the day catalog from the given JSON file.
func NewDayRepository(path string) (*DayRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Days []*entities.Day `json:"days"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal days JSON: %w", err)
	}

	if len(wrapper.Days) != entities.CourseLengthDays {
		return nil, fmt.Errorf("expected %d days, got %d", entities.CourseLengthDays, len(wrapper.Days))
	}

	return &DayRepository{days: wrapper.Days}, nil
}

// GetByNumber retrieves a day by its number (1-20).
func (r *DayRepository) GetByNumber(number int) (*entities.Day, error) {
	if number < 1 || number > entities.CourseLengthDays {
		return nil, ErrInvalidDay
	}

	for _, day := range r.days {
		if day.Number == number {
			return day, nil
		}
	}

	return nil, ErrDayNotFound
}

// GetAll retrieves all course days in order.
func (r *DayRepository) GetAll() []*entities.Day {
	return r.days
}
