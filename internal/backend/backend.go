// README: Backend collaborator capability interface; mock, HTTP, and Postgres variants implement it.
package backend

import (
	"context"
	"errors"

	"cruise/internal/types"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
)

// Backend is the capability set the chatbot core consumes. Implementations
// are interchangeable and selected at construction time.
type Backend interface {
	CreateBooking(ctx context.Context, details BookingDetails) (*BookingResult, error)
	CancelBooking(ctx context.Context, bookingID string) (*BookingResult, error)
	GetUserProfile(ctx context.Context, userID string) (*UserProfile, error)
	GetRideHistory(ctx context.Context, userID string) ([]RideRecord, error)
	GetCarpoolMatches(ctx context.Context, userID string) ([]CarpoolMatch, error)
	EscalateToHuman(ctx context.Context, userID, message string, sentiment types.Sentiment) (*EscalationTicket, error)
	// GetUserNotificationToken returns "" without error when the user has no
	// registered device token.
	GetUserNotificationToken(ctx context.Context, userID string) (string, error)
	UpdateUserPreferences(ctx context.Context, userID string, preferences map[string]string) (*UserProfile, error)
	GetAvailableVehicles(ctx context.Context, location types.Point) ([]Vehicle, error)
}
