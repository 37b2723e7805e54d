// README: Per-intent handlers composing slot extraction with backend calls.
package chatbot

import (
	"context"
	"strconv"
	"strings"

	"cruise/internal/ai"
	"cruise/internal/backend"
	"cruise/internal/memory"
	"cruise/internal/types"
)

// handleBooking covers three sub-cases: both slots present (book and
// confirm), one slot present (prompt for the other), neither (generic
// prompt). Coordinates stay zero unless a geocoder is configured.
func (s *Service) handleBooking(ctx context.Context, text, userID string, lang types.Language) string {
	slots := ExtractLocations(text)

	switch {
	case slots.Pickup != "" && slots.Dropoff != "":
		details := backend.BookingDetails{
			UserID:  userID,
			Pickup:  s.resolveLocation(ctx, slots.Pickup),
			Dropoff: s.resolveLocation(ctx, slots.Dropoff),
		}
		booking, err := s.backend.CreateBooking(ctx, details)
		if err != nil {
			s.log.WithError(err).WithField("user_id", userID).Error("booking failed")
			return replyText(replyBookingFailed, lang)
		}
		if booking.Driver == nil {
			return replyf(replyBookingConfirmedNoDriver, lang, slots.Pickup, slots.Dropoff, booking.ID)
		}
		eta := replyText(defaultETA, lang)
		if booking.ETAMinutes > 0 {
			eta = strconv.Itoa(booking.ETAMinutes)
		}
		return replyf(replyBookingConfirmed, lang,
			slots.Pickup, slots.Dropoff, booking.ID,
			booking.Driver.Name, booking.Driver.Car, booking.Driver.Plate, eta)

	case slots.Pickup != "":
		return replyf(replyNeedDropoff, lang, slots.Pickup)

	case slots.Dropoff != "":
		return replyf(replyNeedPickup, lang, slots.Dropoff)

	default:
		return replyText(replyNeedLocations, lang)
	}
}

// resolveLocation geocodes a place name when a geocoder is available.
// Geocoding failures degrade to zero coordinates; the booking still goes
// through with the free-form name.
func (s *Service) resolveLocation(ctx context.Context, name string) backend.Location {
	loc := backend.Location{Name: name}
	if s.geocoder == nil {
		return loc
	}
	place, err := s.geocoder.Geocode(ctx, name)
	if err != nil {
		s.log.WithError(err).WithField("address", name).Warn("geocoding failed, using zero coordinates")
		return loc
	}
	loc.Lat = place.Position.Lat
	loc.Lng = place.Position.Lng
	return loc
}

// handleCancellation cancels by explicit booking ID, or surfaces the first
// active ride from history and asks for confirmation. It never auto-cancels
// an inferred ride.
func (s *Service) handleCancellation(ctx context.Context, text, userID string, lang types.Language) string {
	if bookingID := ExtractBookingID(text); bookingID != "" {
		result, err := s.backend.CancelBooking(ctx, bookingID)
		if err != nil {
			s.log.WithError(err).WithField("booking_id", bookingID).Error("cancellation failed")
			return replyText(replyCancelFailed, lang)
		}
		return replyf(replyCancelled, lang, bookingID, result.RefundAmount)
	}

	history, err := s.backend.GetRideHistory(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("ride history lookup failed")
		return replyText(replyAskBookingID, lang)
	}
	if len(history) == 0 {
		return replyText(replyNoRideHistory, lang)
	}

	for _, ride := range history {
		if !ride.Active() {
			continue
		}
		dropoff := ride.Dropoff
		if dropoff == "" {
			dropoff = replyText(defaultDestination, lang)
		}
		return replyf(replyActiveRideFound, lang, dropoff)
	}
	return replyText(replyNoActiveRides, lang)
}

func (s *Service) handleRecommendations(ctx context.Context, userID string, lang types.Language) string {
	recommendations, err := s.GetRecommendations(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("recommendations failed")
		return replyText(replyRecommendationsFailed, lang)
	}
	if len(recommendations) == 0 {
		return replyText(replyNoRecommendations, lang)
	}
	return replyf(replyRecommendation, lang, recommendations[0].Content)
}

func (s *Service) handleSafetyCheck(ctx context.Context, userID string, lang types.Language) string {
	report, err := s.PerformSafetyCheck(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("safety check failed")
		return replyText(replySafetyFailed, lang)
	}
	recommendation := report.Recommendations.EN
	if lang == types.LanguageArabic {
		recommendation = report.Recommendations.AR
	}
	return replyf(replySafetyDone, lang, recommendation)
}

// handleCarpool reports the match count and enumerates every match, one
// line per match. Zero matches offer a regular ride instead.
func (s *Service) handleCarpool(ctx context.Context, userID string, lang types.Language) string {
	matches, err := s.GetCarpoolOpportunities(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("carpool lookup failed")
		return replyText(replyCarpoolFailed, lang)
	}
	if len(matches) == 0 {
		return replyText(replyNoCarpool, lang)
	}

	var b strings.Builder
	b.WriteString(replyf(replyCarpoolCount, lang, len(matches)))
	for _, m := range matches {
		b.WriteString("\n")
		b.WriteString(replyf(replyCarpoolMatch, lang,
			m.Driver, m.Pickup, m.Dropoff, m.Time.Format("2006-01-02 15:04")))
	}
	return b.String()
}

// handleGeneral is the only path that reaches the general-purpose language
// model. It forwards the system persona, the user's prior turns, and the
// current message.
func (s *Service) handleGeneral(ctx context.Context, text, userID string, lang types.Language) string {
	if s.llm == nil {
		return replyText(replyProcessingError, lang)
	}

	history, err := s.memory.History(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("failed to load conversation memory")
		history = nil
	}

	messages := make([]ai.Message, 0, len(history))
	for _, turn := range history {
		role := memory.RoleUser
		if turn.Role == memory.RoleAssistant {
			role = memory.RoleAssistant
		}
		messages = append(messages, ai.Message{Role: role, Content: turn.Text})
	}

	userMessage := "The user sent this message in " + string(lang) + " language: " + text
	response, err := s.llm.Complete(ctx, generalSystemPrompt, messages, userMessage)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("language model completion failed")
		return replyText(replyProcessingError, lang)
	}
	return response
}
