package entities

// UserSettings stores user-specific display preferences.
//
// Coefficient here is the legacy copy kept for compatibility with the old
// storage layout; the live multiplier is the one inside CourseProgress and is
// what rendering reads.
type UserSettings struct {
	UserID      int64
	TextMode    bool    // show transcripts instead of video references
	Coefficient float64 // legacy duplicate of CourseProgress.Coefficient
}

// NewUserSettings creates settings with default values.
func NewUserSettings(userID int64) *UserSettings {
	return &UserSettings{
		UserID:      userID,
		TextMode:    false,
		Coefficient: DefaultCoefficient,
	}
}
