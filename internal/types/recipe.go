package types

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MoodCheckResponse reports whether a mood exists and its stored casing
type MoodCheckResponse struct {
	Exists       bool    `json:"exists"`
	ExistingMood *string `json:"existingMood"`
}

// AddMoodResponse is returned by a successful add-mood. ID is omitted when an
// existing recipe was moved instead of inserted.
type AddMoodResponse struct {
	Success bool  `json:"success"`
	ID      *uint `json:"id,omitempty"`
}

// MoodButton describes how the UI renders a mood
type MoodButton struct {
	Mood  string `json:"mood"`
	Label string `json:"label"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}
