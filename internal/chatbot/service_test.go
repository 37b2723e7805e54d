package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cruise/internal/ai"
	"cruise/internal/backend"
	"cruise/internal/memory"
	"cruise/internal/types"
)

type stubLLM struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
	history    []ai.Message
}

func (s *stubLLM) Complete(ctx context.Context, systemPrompt string, history []ai.Message, userMessage string) (string, error) {
	s.lastSystem = systemPrompt
	s.lastUser = userMessage
	s.history = history
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type failingEscalationBackend struct {
	*backend.Mock
}

func (f *failingEscalationBackend) EscalateToHuman(ctx context.Context, userID, message string, sentiment types.Sentiment) (*backend.EscalationTicket, error) {
	return nil, errors.New("support system down")
}

type failingBookingBackend struct {
	*backend.Mock
}

func (f *failingBookingBackend) CreateBooking(ctx context.Context, details backend.BookingDetails) (*backend.BookingResult, error) {
	return nil, errors.New("booking service down")
}

func TestProcessMessage_EscalatesOnNegative(t *testing.T) {
	mock := backend.NewMock()
	mem := memory.NewInMemory(0, 0)
	svc := NewService(Deps{
		Backend:   mock,
		Sentiment: &stubSentimentModel{label: "1 star"},
		Memory:    mem,
	})

	reply := svc.ProcessMessage(context.Background(), "This was a terrible experience", "user1", types.LanguageEnglish)

	if want := replyText(replyEscalated, types.LanguageEnglish); reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
	tickets := mock.Escalations()
	if len(tickets) != 1 {
		t.Fatalf("escalations = %d, want 1", len(tickets))
	}
	if tickets[0].UserID != "user1" {
		t.Errorf("ticket user = %q, want user1", tickets[0].UserID)
	}
	if tickets[0].Sentiment.Label != types.SentimentNegative {
		t.Errorf("ticket sentiment = %s, want NEGATIVE", tickets[0].Sentiment.Label)
	}

	// escalated conversations are still recorded
	turns, err := mem.History(context.Background(), "user1")
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 2 {
		t.Fatalf("memory turns = %d, want 2", len(turns))
	}
	if turns[0].Role != memory.RoleUser || turns[1].Role != memory.RoleAssistant {
		t.Errorf("turn roles = %s/%s, want user/assistant", turns[0].Role, turns[1].Role)
	}
}

func TestProcessMessage_EscalationFailure(t *testing.T) {
	svc := NewService(Deps{
		Backend:   &failingEscalationBackend{backend.NewMock()},
		Sentiment: &stubSentimentModel{label: "1 star"},
	})

	reply := svc.ProcessMessage(context.Background(), "I am furious about the wait", "user1", types.LanguageEnglish)

	if want := replyText(replyEscalationFailed, types.LanguageEnglish); reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
	if !strings.Contains(reply, "1-800-CRUISE-HELP") {
		t.Errorf("reply %q missing support line", reply)
	}
}

func TestProcessMessage_NegativeBelowThresholdNotEscalated(t *testing.T) {
	mock := backend.NewMock()
	llm := &stubLLM{response: "Sorry to hear that. How can I help?"}
	svc := NewService(Deps{
		Backend:   mock,
		LLM:       llm,
		Sentiment: &stubSentimentModel{label: "2 stars"}, // NEGATIVE at exactly 0.5
	})

	reply := svc.ProcessMessage(context.Background(), "that was not great", "user1", types.LanguageEnglish)

	if len(mock.Escalations()) != 0 {
		t.Errorf("escalated at threshold score, want none")
	}
	if reply != llm.response {
		t.Errorf("reply = %q, want llm response", reply)
	}
}

func TestProcessMessage_BookingConfirmed(t *testing.T) {
	svc := NewService(Deps{Backend: backend.NewMock()})

	reply := svc.ProcessMessage(context.Background(),
		"I need a ride from Downtown Station to Airport Terminal 1", "user1", types.LanguageEnglish)

	for _, want := range []string{"downtown station", "airport terminal 1", "John Driver", "Toyota Camry", "ABC123"} {
		if !strings.Contains(reply, want) {
			t.Errorf("reply %q missing %q", reply, want)
		}
	}
}

func TestProcessMessage_BookingFailedLocalized(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang types.Language
	}{
		{"english", "I need a ride from Downtown Station to Airport Terminal 1", types.LanguageEnglish},
		{"arabic autodetected", "أريد حجز سيارة from Downtown Station to Airport Terminal 1", types.LanguageEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(Deps{Backend: &failingBookingBackend{backend.NewMock()}})
			reply := svc.ProcessMessage(context.Background(), tt.text, "user1", tt.lang)

			want := replyText(replyBookingFailed, types.LanguageEnglish)
			if tt.name == "arabic autodetected" {
				want = replyText(replyBookingFailed, types.LanguageArabic)
			}
			if reply != want {
				t.Errorf("reply = %q, want %q", reply, want)
			}
		})
	}
}

func TestProcessMessage_PartialLocations(t *testing.T) {
	svc := NewService(Deps{Backend: backend.NewMock()})

	reply := svc.ProcessMessage(context.Background(), "pick me up at central station", "user1", types.LanguageEnglish)
	if !strings.Contains(reply, "central station") || !strings.Contains(reply, "Where would you like to go?") {
		t.Errorf("reply = %q, want dropoff prompt echoing pickup", reply)
	}

	reply = svc.ProcessMessage(context.Background(), "book me a car please", "user1", types.LanguageEnglish)
	if want := replyText(replyNeedLocations, types.LanguageEnglish); reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

func TestProcessMessage_CancellationByID(t *testing.T) {
	mock := backend.NewMock()
	svc := NewService(Deps{Backend: mock})

	booking, err := svc.BookRide(context.Background(), "user1", backend.BookingDetails{
		Pickup:  backend.Location{Name: "Downtown Station"},
		Dropoff: backend.Location{Name: "Airport Terminal 1"},
	})
	if err != nil {
		t.Fatal(err)
	}

	reply := svc.ProcessMessage(context.Background(),
		"cancel my booking id "+booking.ID, "user1", types.LanguageEnglish)

	if !strings.Contains(reply, booking.ID) {
		t.Errorf("reply %q missing booking id %s", reply, booking.ID)
	}
	if !strings.Contains(reply, "24.50") {
		t.Errorf("reply %q missing refund amount", reply)
	}

	cancelled, err := mock.CancelBooking(context.Background(), booking.ID)
	if err != nil {
		t.Fatal(err)
	}
	if cancelled.Status != backend.StatusCancelled {
		t.Errorf("status = %s, want %s", cancelled.Status, backend.StatusCancelled)
	}
}

func TestProcessMessage_CancellationFallback(t *testing.T) {
	t.Run("active ride found", func(t *testing.T) {
		mock := backend.NewMock()
		svc := NewService(Deps{Backend: mock})
		if _, err := svc.BookRide(context.Background(), "user1", backend.BookingDetails{
			Pickup:  backend.Location{Name: "Home"},
			Dropoff: backend.Location{Name: "Airport Terminal 1"},
		}); err != nil {
			t.Fatal(err)
		}

		reply := svc.ProcessMessage(context.Background(), "I want to cancel", "user1", types.LanguageEnglish)
		if !strings.Contains(reply, "Airport Terminal 1") {
			t.Errorf("reply %q missing active ride destination", reply)
		}
	})

	t.Run("no active rides", func(t *testing.T) {
		// user1's seeded history is all completed rides
		svc := NewService(Deps{Backend: backend.NewMock()})
		reply := svc.ProcessMessage(context.Background(), "I want to cancel", "user1", types.LanguageEnglish)
		if want := replyText(replyNoActiveRides, types.LanguageEnglish); reply != want {
			t.Errorf("reply = %q, want %q", reply, want)
		}
	})

	t.Run("no ride history", func(t *testing.T) {
		svc := NewService(Deps{Backend: backend.NewMock()})
		reply := svc.ProcessMessage(context.Background(), "I want to cancel", "user2", types.LanguageEnglish)
		if want := replyText(replyNoRideHistory, types.LanguageEnglish); reply != want {
			t.Errorf("reply = %q, want %q", reply, want)
		}
	})
}

func TestProcessMessage_Carpool(t *testing.T) {
	svc := NewService(Deps{Backend: backend.NewMock()})

	reply := svc.ProcessMessage(context.Background(), "Any carpool options?", "user1", types.LanguageEnglish)
	for _, want := range []string{"1 carpool", "John Doe", "Downtown Station", "2023-06-30 15:45"} {
		if !strings.Contains(reply, want) {
			t.Errorf("reply %q missing %q", reply, want)
		}
	}

	reply = svc.ProcessMessage(context.Background(), "Any carpool options?", "user2", types.LanguageEnglish)
	if want := replyText(replyNoCarpool, types.LanguageEnglish); reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

func TestProcessMessage_SafetyCheck(t *testing.T) {
	svc := NewService(Deps{Backend: backend.NewMock()})

	reply := svc.ProcessMessage(context.Background(), "Is this car safe?", "user1", types.LanguageEnglish)
	if !strings.Contains(reply, "Safety check completed") {
		t.Errorf("reply = %q, want safety confirmation", reply)
	}
	if !strings.Contains(reply, "driver ID") {
		t.Errorf("reply = %q, want english recommendation", reply)
	}
}

func TestProcessMessage_Recommendations(t *testing.T) {
	llm := &stubLLM{response: "Try the airport express route on weekday mornings."}
	svc := NewService(Deps{Backend: backend.NewMock(), LLM: llm})

	reply := svc.ProcessMessage(context.Background(), "What do you recommend?", "user1", types.LanguageEnglish)
	if want := "Based on your history, I recommend: " + llm.response; reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
	if !strings.Contains(llm.lastUser, "John Doe") {
		t.Errorf("llm prompt %q missing profile data", llm.lastUser)
	}
}

func TestProcessMessage_GeneralUsesMemory(t *testing.T) {
	llm := &stubLLM{response: "Happy to help!"}
	mem := memory.NewInMemory(0, 0)
	svc := NewService(Deps{Backend: backend.NewMock(), LLM: llm, Memory: mem})

	svc.ProcessMessage(context.Background(), "hello there", "user1", types.LanguageEnglish)
	svc.ProcessMessage(context.Background(), "tell me a joke", "user1", types.LanguageEnglish)

	// the second call sees the first exchange as history
	if len(llm.history) != 2 {
		t.Fatalf("history = %d messages, want 2", len(llm.history))
	}
	if llm.history[0].Content != "hello there" {
		t.Errorf("history[0] = %q, want the first user message", llm.history[0].Content)
	}
	if !strings.Contains(llm.lastUser, "tell me a joke") {
		t.Errorf("last prompt %q missing current message", llm.lastUser)
	}

	turns, err := mem.History(context.Background(), "user1")
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 4 {
		t.Errorf("memory turns = %d, want 4", len(turns))
	}
}

func TestProcessMessage_ArabicFallbackError(t *testing.T) {
	// unknown intent with no language model degrades to a localized error
	svc := NewService(Deps{Backend: backend.NewMock()})

	reply := svc.ProcessMessage(context.Background(), "كيف حالك", "user2", types.LanguageEnglish)
	if want := replyText(replyProcessingError, types.LanguageArabic); reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

func TestProcessMessage_RecoversFromPanic(t *testing.T) {
	svc := NewService(Deps{Backend: backend.NewMock(), LLM: &panickingLLM{}})

	reply := svc.ProcessMessage(context.Background(), "hello", "user1", types.LanguageEnglish)
	if want := replyText(replyProcessingError, types.LanguageEnglish); reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

type panickingLLM struct{}

func (p *panickingLLM) Complete(ctx context.Context, systemPrompt string, history []ai.Message, userMessage string) (string, error) {
	panic("model exploded")
}
