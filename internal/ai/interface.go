package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// Complete generates a free-form reply given a system prompt, the prior
	// conversation turns, and the current user message.
	Complete(ctx context.Context, systemPrompt string, history []Message, userMessage string) (string, error)
}

// SentimentModel scores a message on the 5-class star-rating scale
// ("1 star" .. "5 stars") used by multilingual review-sentiment models.
type SentimentModel interface {
	Score(ctx context.Context, text string) (StarScore, error)
}
