package chatbot

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"book with verb and vehicle", "I want to book a taxi", IntentBooking},
		{"need a ride", "I need a ride to the office", IntentBooking},
		{"take me to", "Take me to the airport please", IntentBooking},
		{"from-to phrase", "from downtown station to airport terminal 1", IntentBooking},
		{"cancel booking", "Please cancel my booking", IntentCancellation},
		{"i want to cancel", "I want to cancel", IntentCancellation},
		{"cancel trip", "cancel the trip", IntentCancellation},
		{"recommend", "What do you recommend for dinner spots?", IntentRecommendations},
		{"suggest", "Can you suggest somewhere nice?", IntentRecommendations},
		{"safety", "Is this car safe?", IntentSafety},
		{"safety check", "Run a safety check", IntentSafety},
		{"carpool", "Any carpool options today?", IntentCarpool},
		{"split cost", "Can we split the cost?", IntentCarpool},
		{"greeting", "Hello there!", IntentUnknown},
		{"empty", "", IntentUnknown},
		{"uppercase", "BOOK A CAR NOW", IntentBooking},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.message); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

// Booking outranks cancellation when a message matches both groups.
func TestClassifyIntent_Priority(t *testing.T) {
	msg := "book a ride and cancel my old booking"
	if got := ClassifyIntent(msg); got != IntentBooking {
		t.Errorf("ClassifyIntent(%q) = %s, want %s", msg, got, IntentBooking)
	}
}

// Classification is a pure function: same input, same output.
func TestClassifyIntent_Deterministic(t *testing.T) {
	msg := "I need a ride from Downtown Station to Airport Terminal 1"
	first := ClassifyIntent(msg)
	for i := 0; i < 10; i++ {
		if got := ClassifyIntent(msg); got != first {
			t.Fatalf("run %d: got %s, want %s", i, got, first)
		}
	}
}
