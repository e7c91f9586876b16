package entities

// UserReminders contains the daily-nudge configuration for a user. It lives
// in the same key-value state store as the course progress.
type UserReminders struct {
	Enabled      bool   `json:"enabled"`
	Hour         int    `json:"hour"`         // local server hour, 0-23
	LastSentDate string `json:"lastSentDate"` // date of the last nudge, DateLayout
}

// NewUserReminders returns the default reminder configuration: disabled until
// the user opts in, morning hour preselected.
func NewUserReminders() *UserReminders {
	return &UserReminders{
		Enabled: false,
		Hour:    9,
	}
}

// ShouldSend reports whether a nudge is due for the given hour and date.
func (r *UserReminders) ShouldSend(hour int, date string) bool {
	return r.Enabled && r.Hour == hour && r.LastSentDate != date
}
