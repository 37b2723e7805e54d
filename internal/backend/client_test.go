package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_CreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings" {
			t.Errorf("request = %s %s, want POST /bookings", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key123" {
			t.Errorf("authorization = %q, want bearer token", got)
		}
		var details BookingDetails
		if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
			t.Fatal(err)
		}
		if details.UserID != "user1" {
			t.Errorf("user_id = %q, want user1", details.UserID)
		}
		_ = json.NewEncoder(w).Encode(BookingResult{ID: "booking_remote", Status: StatusConfirmed})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key123")
	booking, err := c.CreateBooking(context.Background(), BookingDetails{
		UserID:  "user1",
		Pickup:  Location{Name: "Downtown Station"},
		Dropoff: Location{Name: "Airport Terminal 1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if booking.ID != "booking_remote" || booking.Status != StatusConfirmed {
		t.Errorf("booking = %+v, want the remote result", booking)
	}
}

func TestClient_NotFoundMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key123")
	if _, err := c.CancelBooking(context.Background(), "booking_nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestClient_MissingTokenIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key123")
	token, err := c.GetUserNotificationToken(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("err = %v, want nil for missing token", err)
	}
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}
}

func TestClient_ServerErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key123")
	if _, err := c.GetUserProfile(context.Background(), "user1"); err == nil {
		t.Fatal("want error on 500 response")
	}
}
