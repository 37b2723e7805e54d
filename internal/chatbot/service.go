// README: Chatbot orchestrator; sequences language detection, sentiment, escalation, intent dispatch, and memory.
package chatbot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"cruise/internal/ai"
	"cruise/internal/backend"
	"cruise/internal/maps"
	"cruise/internal/memory"
	"cruise/internal/types"
)

// generalSystemPrompt frames the LLM fallback path. All other intents are
// handled deterministically and never reach the model.
const generalSystemPrompt = `You are Cruise's AI assistant for their ride-hailing app. Be helpful, concise, and friendly.
Focus on helping users book rides, check ride status, find carpools, and other transportation needs.
If you don't know something, be honest and suggest contacting customer support.
Always prioritize customer safety and satisfaction.
Respond to greetings in a warm, welcoming way.
You MUST respond in the same language as the user's query.
If the user writes in Arabic, you MUST respond in Arabic.
If the user writes in English, respond in English.`

const recommendationSystemPrompt = `You are a helpful assistant that provides personalized ride recommendations for a ride-hailing app. Reply with a single short suggestion.`

// Geocoder resolves place names to coordinates. Optional: when absent,
// booked locations carry zero coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*maps.GeocodedPlace, error)
}

// Deps lists the collaborators a Service needs. Memory may be nil, in which
// case a bounded in-process store with defaults is used. Geocoder may be nil.
type Deps struct {
	Backend   backend.Backend
	LLM       ai.LLMProvider
	Sentiment ai.SentimentModel
	Memory    memory.Store
	Geocoder  Geocoder
}

// Service is the chatbot core. It exclusively owns the user_id to
// conversation memory mapping.
type Service struct {
	backend   backend.Backend
	llm       ai.LLMProvider
	sentiment *SentimentAnalyzer
	memory    memory.Store
	geocoder  Geocoder
	log       *logrus.Entry
}

func NewService(deps Deps) *Service {
	mem := deps.Memory
	if mem == nil {
		mem = memory.NewInMemory(0, 0)
	}
	return &Service{
		backend:   deps.Backend,
		llm:       deps.LLM,
		sentiment: NewSentimentAnalyzer(deps.Sentiment),
		memory:    mem,
		geocoder:  deps.Geocoder,
		log:       logrus.WithField("component", "chatbot"),
	}
}

// ProcessMessage handles one user message end to end and always returns a
// user-facing string in the effective language. No failure escapes: every
// error is caught, logged with context, and converted to a localized reply.
func (s *Service) ProcessMessage(ctx context.Context, text, userID string, requested types.Language) (reply string) {
	lang := types.DetectLanguage(text, requested)
	log := s.log.WithFields(logrus.Fields{"user_id": userID, "language": lang})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("panic while processing message")
			reply = replyText(replyProcessingError, lang)
		}
	}()

	sentiment := s.sentiment.Analyze(ctx, text)
	log.WithFields(logrus.Fields{"label": sentiment.Label, "score": sentiment.Score}).Info("analyzed sentiment")

	// Escalation gate: runs before intent classification and short-circuits
	// the rest of the pipeline. The conversation is still recorded so a
	// human agent picking up the ticket sees the full transcript.
	if sentiment.Label == types.SentimentNegative && sentiment.Score > 0.5 {
		if _, err := s.backend.EscalateToHuman(ctx, userID, text, sentiment); err != nil {
			log.WithError(err).Error("escalation to human support failed")
			reply = replyText(replyEscalationFailed, lang)
		} else {
			log.Info("escalated to human support")
			reply = replyText(replyEscalated, lang)
		}
		s.remember(ctx, userID, text, reply)
		return reply
	}

	intent := ClassifyIntent(text)
	log.WithField("intent", intent).Info("classified intent")

	switch intent {
	case IntentBooking:
		reply = s.handleBooking(ctx, text, userID, lang)
	case IntentCancellation:
		reply = s.handleCancellation(ctx, text, userID, lang)
	case IntentRecommendations:
		reply = s.handleRecommendations(ctx, userID, lang)
	case IntentSafety:
		reply = s.handleSafetyCheck(ctx, userID, lang)
	case IntentCarpool:
		reply = s.handleCarpool(ctx, userID, lang)
	default:
		reply = s.handleGeneral(ctx, text, userID, lang)
	}

	s.remember(ctx, userID, text, reply)
	return reply
}

// remember appends the user/assistant turn pair. Memory failures are logged
// and swallowed; losing context must not fail the reply.
func (s *Service) remember(ctx context.Context, userID, userText, assistantText string) {
	err := s.memory.Append(ctx, userID,
		memory.Turn{Role: memory.RoleUser, Text: userText},
		memory.Turn{Role: memory.RoleAssistant, Text: assistantText},
	)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("failed to update conversation memory")
	}
}

// BookRide creates a booking on behalf of userID. Pass-through for the API.
func (s *Service) BookRide(ctx context.Context, userID string, details backend.BookingDetails) (*backend.BookingResult, error) {
	details.UserID = userID
	return s.backend.CreateBooking(ctx, details)
}

// CancelRide cancels a booking. Pass-through for the API.
func (s *Service) CancelRide(ctx context.Context, userID, rideID string) (*backend.BookingResult, error) {
	return s.backend.CancelBooking(ctx, rideID)
}

// GetRecommendations builds a personalized suggestion from the user's
// profile and ride history via the language model.
func (s *Service) GetRecommendations(ctx context.Context, userID string) ([]Recommendation, error) {
	profile, err := s.backend.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	history, err := s.backend.GetRideHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get ride history: %w", err)
	}
	if s.llm == nil {
		return nil, fmt.Errorf("no language model configured")
	}

	profileJSON, _ := json.Marshal(profile)
	historyJSON, _ := json.Marshal(history)
	userMessage := fmt.Sprintf(
		"Based on this user profile and ride history, provide a recommendation.\nProfile: %s\nRide history: %s",
		profileJSON, historyJSON,
	)

	content, err := s.llm.Complete(ctx, recommendationSystemPrompt, nil, userMessage)
	if err != nil {
		return nil, fmt.Errorf("generate recommendation: %w", err)
	}
	return []Recommendation{{Type: "recommendation", Content: content}}, nil
}

// PerformSafetyCheck returns the current safety recommendation payload.
// The recommendation is a static bilingual policy statement.
func (s *Service) PerformSafetyCheck(ctx context.Context, userID string) (*SafetyReport, error) {
	return &SafetyReport{
		Status: "completed",
		Issues: []string{},
		Recommendations: Bilingual{
			EN: "Make sure to check the vehicle details and driver ID before starting your journey.",
			AR: "تأكد من التحقق من تفاصيل السيارة وهوية السائق قبل بدء رحلتك.",
		},
	}, nil
}

// GetCarpoolOpportunities lists candidate shared rides for userID.
func (s *Service) GetCarpoolOpportunities(ctx context.Context, userID string) ([]backend.CarpoolMatch, error) {
	return s.backend.GetCarpoolMatches(ctx, userID)
}

// GetAvailableVehicles lists vehicles near a point. Pass-through for the API.
func (s *Service) GetAvailableVehicles(ctx context.Context, location types.Point) ([]backend.Vehicle, error) {
	return s.backend.GetAvailableVehicles(ctx, location)
}
