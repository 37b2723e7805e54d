// README: In-memory mock backend with seeded fixtures, used in tests and local runs.
package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cruise/internal/types"
)

// Mock is an in-memory Backend implementation. It is safe for concurrent use.
type Mock struct {
	mu       sync.Mutex
	users    map[string]*UserProfile
	bookings map[string]*BookingResult
	rides    map[string][]RideRecord
	carpools map[string][]CarpoolMatch
	tokens   map[string]string
	vehicles []Vehicle
	tickets  []*EscalationTicket
}

// NewMock returns a Mock seeded with two users, a ride history, one carpool
// match, and a small vehicle fleet.
func NewMock() *Mock {
	m := &Mock{
		users:    make(map[string]*UserProfile),
		bookings: make(map[string]*BookingResult),
		rides:    make(map[string][]RideRecord),
		carpools: make(map[string][]CarpoolMatch),
		tokens:   make(map[string]string),
	}
	m.seed()
	return m
}

func (m *Mock) seed() {
	m.users["user1"] = &UserProfile{
		ID:    "user1",
		Name:  "John Doe",
		Email: "john@example.com",
		Preferences: map[string]string{
			"language":       "en",
			"payment_method": "credit_card",
			"car_type":       "standard",
		},
	}
	m.users["user2"] = &UserProfile{
		ID:    "user2",
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Preferences: map[string]string{
			"language":       "ar",
			"payment_method": "wallet",
			"car_type":       "comfort",
		},
	}

	m.rides["user1"] = []RideRecord{
		{ID: "ride_6789", Pickup: "Downtown Station", Dropoff: "Airport Terminal 1",
			Date: time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC), Status: StatusCompleted, Fare: 25.50, CarType: "standard"},
		{ID: "ride_5678", Pickup: "Home", Dropoff: "Office",
			Date: time.Date(2023, 6, 10, 8, 15, 0, 0, time.UTC), Status: StatusCompleted, Fare: 15.75, CarType: "comfort"},
		{ID: "ride_4567", Pickup: "Shopping Mall", Dropoff: "Home",
			Date: time.Date(2023, 6, 5, 18, 45, 0, 0, time.UTC), Status: StatusCompleted, Fare: 18.25, CarType: "standard"},
	}

	m.carpools["user1"] = []CarpoolMatch{
		{ID: "carpool_123", Driver: "John Doe", Pickup: "Downtown Station", Dropoff: "Airport Terminal 1",
			Time: time.Date(2023, 6, 30, 15, 45, 0, 0, time.UTC), Seats: 2, Price: 15.0},
	}

	m.tokens["user1"] = "mock_device_token_123"
	m.tokens["user2"] = "mock_device_token_456"

	m.vehicles = []Vehicle{
		{ID: "vehicle_123", Type: "standard", Model: "Toyota Camry", ETAMinutes: 5, Fare: 24.50},
		{ID: "vehicle_456", Type: "comfort", Model: "Honda Accord", ETAMinutes: 7, Fare: 32.75},
		{ID: "vehicle_789", Type: "luxury", Model: "Mercedes S-Class", ETAMinutes: 12, Fare: 45.00},
	}
}

func (m *Mock) CreateBooking(ctx context.Context, details BookingDetails) (*BookingResult, error) {
	if details.UserID == "" {
		return nil, ErrBadRequest
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	b := &BookingResult{
		ID:      fmt.Sprintf("booking_%s", uuid.NewString()[:6]),
		Status:  StatusConfirmed,
		Pickup:  details.Pickup,
		Dropoff: details.Dropoff,
		Driver: &Driver{
			Name:   "John Driver",
			Car:    "Toyota Camry",
			Plate:  "ABC123",
			Rating: 4.8,
		},
		ETAMinutes: 5,
		Fare:       24.50,
		CreatedAt:  time.Now(),
	}
	m.bookings[b.ID] = b
	m.rides[details.UserID] = append([]RideRecord{{
		ID:      b.ID,
		Pickup:  details.Pickup.Name,
		Dropoff: details.Dropoff.Name,
		Date:    b.CreatedAt,
		Status:  b.Status,
		Fare:    b.Fare,
		CarType: details.VehicleType,
	}}, m.rides[details.UserID]...)
	return cloneBooking(b), nil
}

func (m *Mock) CancelBooking(ctx context.Context, bookingID string) (*BookingResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[bookingID]
	if !ok {
		return nil, ErrNotFound
	}
	b.Status = StatusCancelled
	b.RefundAmount = b.Fare
	for userID, rides := range m.rides {
		for i := range rides {
			if rides[i].ID == bookingID {
				m.rides[userID][i].Status = StatusCancelled
			}
		}
	}
	return cloneBooking(b), nil
}

func (m *Mock) GetUserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	out.Preferences = clonePrefs(u.Preferences)
	return &out, nil
}

func (m *Mock) GetRideHistory(ctx context.Context, userID string) ([]RideRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RideRecord(nil), m.rides[userID]...), nil
}

func (m *Mock) GetCarpoolMatches(ctx context.Context, userID string) ([]CarpoolMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CarpoolMatch(nil), m.carpools[userID]...), nil
}

func (m *Mock) EscalateToHuman(ctx context.Context, userID, message string, sentiment types.Sentiment) (*EscalationTicket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &EscalationTicket{
		ID:                    fmt.Sprintf("ticket_%s", uuid.NewString()[:6]),
		UserID:                userID,
		Message:               message,
		Sentiment:             sentiment,
		Status:                "pending",
		EstimatedResponseTime: "5 minutes",
		CreatedAt:             time.Now(),
	}
	m.tickets = append(m.tickets, t)
	out := *t
	return &out, nil
}

func (m *Mock) GetUserNotificationToken(ctx context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[userID], nil
}

func (m *Mock) UpdateUserPreferences(ctx context.Context, userID string, preferences map[string]string) (*UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	if u.Preferences == nil {
		u.Preferences = make(map[string]string)
	}
	for k, v := range preferences {
		u.Preferences[k] = v
	}
	out := *u
	out.Preferences = clonePrefs(u.Preferences)
	return &out, nil
}

func (m *Mock) GetAvailableVehicles(ctx context.Context, location types.Point) ([]Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Vehicle(nil), m.vehicles...), nil
}

// Escalations returns all recorded tickets, oldest first. Test helper.
func (m *Mock) Escalations() []*EscalationTicket {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*EscalationTicket(nil), m.tickets...)
}

func cloneBooking(b *BookingResult) *BookingResult {
	out := *b
	if b.Driver != nil {
		d := *b.Driver
		out.Driver = &d
	}
	return &out
}

func clonePrefs(p map[string]string) map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
