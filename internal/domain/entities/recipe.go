package entities

// Recipe is one catalog recipe. Ingredient lines are display strings; lines
// of recipes with Multiply set have their gram amounts scaled by the user's
// coefficient at render time.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Emoji       string   `json:"emoji,omitempty"`
	Time        string   `json:"time,omitempty"`
	Multiply    bool     `json:"multiply,omitempty"`
	VideoFile   string   `json:"videoFile,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Steps       []string `json:"steps,omitempty"`
}

// Recipe categories as shown in the catalog.
const (
	RecipeCategoryBreakfasts = "breakfasts"
	RecipeCategoryDinners    = "dinners"
	RecipeCategoryGarnish    = "garnish"
	RecipeCategorySauces     = "sauces"
	RecipeCategoryExtra      = "extra"
)
