// README: Sentiment analysis combining a star-rating model with an anger keyword override.
package chatbot

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"cruise/internal/ai"
	"cruise/internal/types"
)

// angryWords force NEGATIVE/0.8 regardless of the model's star rating.
var angryWords = []string{"angry", "mad", "upset", "furious", "frustrated", "annoyed", "irritated"}

// SentimentAnalyzer scores messages as POSITIVE/NEGATIVE/NEUTRAL. It never
// returns an error: any internal failure degrades to NEUTRAL/0.5 so that
// escalation is skipped rather than erroring the whole pipeline.
type SentimentAnalyzer struct {
	model ai.SentimentModel
	log   *logrus.Entry
}

func NewSentimentAnalyzer(model ai.SentimentModel) *SentimentAnalyzer {
	return &SentimentAnalyzer{
		model: model,
		log:   logrus.WithField("component", "sentiment"),
	}
}

var neutral = types.Sentiment{Label: types.SentimentNeutral, Score: 0.5}

// Analyze scores one message. Star ratings 1-2 map to NEGATIVE with score
// (3-rating)/2, ratings 3-5 to POSITIVE with score (rating-3)/2.
func (a *SentimentAnalyzer) Analyze(ctx context.Context, text string) types.Sentiment {
	if containsAngryWord(text) {
		return types.Sentiment{Label: types.SentimentNegative, Score: 0.8}
	}

	if a.model == nil {
		return neutral
	}
	result, err := a.model.Score(ctx, text)
	if err != nil {
		a.log.WithError(err).Error("sentiment model failed, degrading to neutral")
		return neutral
	}

	rating, err := parseStarRating(result.Label)
	if err != nil {
		a.log.WithField("label", result.Label).Error("unparseable sentiment label, degrading to neutral")
		return neutral
	}

	if rating <= 2 {
		return types.Sentiment{Label: types.SentimentNegative, Score: float64(3-rating) / 2}
	}
	return types.Sentiment{Label: types.SentimentPositive, Score: float64(rating-3) / 2}
}

func containsAngryWord(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range angryWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// parseStarRating extracts the number from labels like "4 stars".
func parseStarRating(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(fields[0])
}
