// Package entities contains domain entities used across the application.
package entities

// DayTask is an atomic checklist item scoped to one course day.
type DayTask struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Emoji    string `json:"emoji"`
	Optional bool   `json:"optional,omitempty"`
}

// Supplement describes one supplement intake for a day.
type Supplement struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Timing string `json:"timing"`
}

// Exercise is one activity item for a day.
type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Note string `json:"note"`
}

// MealScheduleItem is one timed entry of a kefir day.
type MealScheduleItem struct {
	Time string `json:"time"`
	Item string `json:"item"`
}

// DayMeal is the lunch or dinner of a normal day. An empty RecipeID means the
// meal has no linked recipe (a skip or a constructor meal).
type DayMeal struct {
	Time      string `json:"time"`
	RecipeID  string `json:"recipeId,omitempty"`
	Name      string `json:"name"`
	Skippable bool   `json:"skippable,omitempty"`
}

// DayMeals holds the meal plan of a day: either a kefir schedule or a normal
// lunch/dinner plan with garnish and optional snack.
type DayMeals struct {
	Kefir    bool               `json:"kefir,omitempty"`
	PreMeal  string             `json:"preMeal"`
	Schedule []MealScheduleItem `json:"schedule,omitempty"`
	Lunch    *DayMeal           `json:"lunch,omitempty"`
	Dinner   *DayMeal           `json:"dinner,omitempty"`
	Garnish  []string           `json:"garnish,omitempty"`
	Snack    []string           `json:"snack,omitempty"`
}

// ShoppingReminder nudges the user towards next week's shopping list.
type ShoppingReminder struct {
	Message  string `json:"message"`
	NextWeek int    `json:"nextWeek"`
}

// Day is one unit of the 20-day course with its tasks, meals and content.
type Day struct {
	Number           int               `json:"number"`
	Title            string            `json:"title"`
	Subtitle         string            `json:"subtitle,omitempty"`
	KefirDay         bool              `json:"kefirDay,omitempty"`
	Highlights       []string          `json:"highlights,omitempty"`
	ShoppingReminder *ShoppingReminder `json:"shoppingReminder,omitempty"`
	Morning          []DayTask         `json:"morning"`
	WaterGoalML      int               `json:"waterGoalMl"`
	Supplements      []Supplement      `json:"supplements"`
	StepsGoal        int               `json:"stepsGoal"`
	PlankSeconds     int               `json:"plankSeconds,omitempty"`
	Exercises        []Exercise        `json:"exercises"`
	Meals            DayMeals          `json:"meals"`
	Evening          []DayTask         `json:"evening"`
	VideoFile        string            `json:"videoFile,omitempty"`
}

// RequiredTaskIDs lists the tasks that must be done before the day counts as
// complete: morning, exercises and the non-optional evening items. This gate
// lives in the UI layer; the progress store itself never checks it.
func (d *Day) RequiredTaskIDs() []string {
	ids := make([]string, 0, len(d.Morning)+len(d.Exercises)+len(d.Evening))
	for _, t := range d.Morning {
		ids = append(ids, t.ID)
	}
	for _, e := range d.Exercises {
		ids = append(ids, e.ID)
	}
	for _, t := range d.Evening {
		if !t.Optional {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
