package entities

// ShoppingItem is one purchasable item of the shopping list.
type ShoppingItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// ShoppingCategory groups shopping items.
type ShoppingCategory struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Emoji string         `json:"emoji"`
	Items []ShoppingItem `json:"items"`
}

// PreparationItem is one pre-course checklist entry.
type PreparationItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Required    bool   `json:"required"`
}
