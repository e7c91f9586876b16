package entities

// Workout is one video workout or practice from the catalog.
type Workout struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	VideoFile string `json:"videoFile"`
	Duration  string `json:"duration"`
	Emoji     string `json:"emoji"`
}

// InfoItem is one informational video/text entry.
type InfoItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	VideoFile   string `json:"videoFile"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}
