// README: Backend collaborator data model (bookings, profiles, rides, carpool, escalations).
package backend

import (
	"time"

	"cruise/internal/types"
)

// Location is a named place with coordinates. Coordinates stay zero unless a
// geocoder resolved the name upstream.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"latitude"`
	Lng  float64 `json:"longitude"`
}

// BookingDetails is the request payload for CreateBooking.
type BookingDetails struct {
	UserID        string    `json:"user_id"`
	Pickup        Location  `json:"pickup"`
	Dropoff       Location  `json:"dropoff"`
	VehicleType   string    `json:"vehicle_type,omitempty"`
	ScheduledTime time.Time `json:"scheduled_time,omitzero"`
}

// Driver describes the driver assigned to a booking.
type Driver struct {
	Name   string  `json:"name"`
	Car    string  `json:"car"`
	Plate  string  `json:"plate"`
	Rating float64 `json:"rating,omitempty"`
}

// BookingResult is the backend's view of a booking. The chatbot core treats
// it as an opaque echoed structure.
type BookingResult struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	Pickup       Location  `json:"pickup"`
	Dropoff      Location  `json:"dropoff"`
	Driver       *Driver   `json:"driver,omitempty"`
	ETAMinutes   int       `json:"eta_minutes,omitempty"`
	Fare         float64   `json:"fare,omitempty"`
	RefundAmount float64   `json:"refund_amount,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// UserProfile mirrors the rider record held by the ride-hailing platform.
type UserProfile struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// RideRecord is one entry of a user's ride history.
type RideRecord struct {
	ID      string    `json:"id"`
	Pickup  string    `json:"pickup"`
	Dropoff string    `json:"dropoff"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
	Fare    float64   `json:"fare"`
	CarType string    `json:"car_type,omitempty"`
}

// Active reports whether the ride can still be cancelled.
func (r RideRecord) Active() bool {
	return r.Status != StatusCancelled && r.Status != StatusCompleted
}

// CarpoolMatch is a candidate shared-ride pairing on an overlapping route.
type CarpoolMatch struct {
	ID      string    `json:"id"`
	Driver  string    `json:"driver"`
	Pickup  string    `json:"pickup"`
	Dropoff string    `json:"dropoff"`
	Time    time.Time `json:"time"`
	Seats   int       `json:"seats"`
	Price   float64   `json:"price"`
}

// EscalationTicket records a handoff to human support.
type EscalationTicket struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"user_id"`
	Message               string          `json:"message"`
	Sentiment             types.Sentiment `json:"sentiment"`
	Status                string          `json:"status"`
	EstimatedResponseTime string          `json:"estimated_response_time,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

// Vehicle is an available vehicle near a location.
type Vehicle struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Model      string  `json:"model"`
	ETAMinutes int     `json:"eta_minutes"`
	Fare       float64 `json:"fare"`
}
