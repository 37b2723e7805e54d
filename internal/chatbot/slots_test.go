package chatbot

import "testing"

func TestExtractLocations(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantPickup  string
		wantDropoff string
	}{
		{
			name:        "both slots via to split",
			text:        "I need a ride from Downtown Station to Airport Terminal 1",
			wantPickup:  "downtown station",
			wantDropoff: "airport terminal 1",
		},
		{
			name:        "book from to",
			text:        "Book a car from Central Park to Grand Hotel",
			wantPickup:  "central park",
			wantDropoff: "grand hotel",
		},
		{
			name:       "pickup only via at",
			text:       "pick me up at central station",
			wantPickup: "central station",
		},
		{
			name:       "pickup only via from",
			text:       "I'm waiting from shopping mall",
			wantPickup: "shopping mall",
		},
		{
			name: "no locations",
			text: "hello, how are you?",
		},
		{
			// split candidates are single words, so the regex pass takes over
			// and only the dropoff pattern matches
			name:        "single word split falls back to regex",
			text:        "home to office",
			wantDropoff: "office",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLocations(tt.text)
			if got.Pickup != tt.wantPickup {
				t.Errorf("pickup = %q, want %q", got.Pickup, tt.wantPickup)
			}
			if got.Dropoff != tt.wantDropoff {
				t.Errorf("dropoff = %q, want %q", got.Dropoff, tt.wantDropoff)
			}
		})
	}
}

func TestExtractBookingID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"compound form", "cancel booking id ABC123", "ABC123"},
		{"compound with colon", "my booking number: 98765", "98765"},
		{"simple id form", "cancel ride id: 12345", "12345"},
		{"booking followed by token", "cancel my booking booking_abc123", "booking_abc123"},
		{"case preserved", "Cancel Booking ID XyZ789", "XyZ789"},
		{"no identifier", "cancel my ride", ""},
		{"plain chit chat", "thanks a lot", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractBookingID(tt.text); got != tt.want {
				t.Errorf("ExtractBookingID(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
