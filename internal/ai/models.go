package ai

// Message is one turn of a conversation passed to the model.
type Message struct {
	// Role is "user" or "assistant".
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StarScore is the raw output of a star-rating sentiment model.
type StarScore struct {
	// Label is "1 star" through "5 stars".
	Label string `json:"label"`

	// Score is the model's confidence for Label, in [0,1].
	Score float64 `json:"score"`
}
