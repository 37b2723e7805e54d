// README: Backend store backed by PostgreSQL (minimal methods for MVP).
package backend

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cruise/internal/types"
)

// Postgres is a Backend implementation persisting to PostgreSQL.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) CreateBooking(ctx context.Context, details BookingDetails) (*BookingResult, error) {
	if details.UserID == "" {
		return nil, ErrBadRequest
	}
	b := &BookingResult{
		ID:      fmt.Sprintf("booking_%s", uuid.NewString()[:6]),
		Status:  StatusConfirmed,
		Pickup:  details.Pickup,
		Dropoff: details.Dropoff,
		Driver: &Driver{
			Name:  "John Driver",
			Car:   "Toyota Camry",
			Plate: "ABC123",
		},
		ETAMinutes: 5,
		Fare:       24.50,
		CreatedAt:  time.Now(),
	}
	_, err := s.db.Exec(ctx, `
        INSERT INTO bookings (
            id, user_id, status,
            pickup_name, pickup_lat, pickup_lng,
            dropoff_name, dropoff_lat, dropoff_lng,
            driver_name, driver_car, driver_plate,
            eta_minutes, fare, car_type, created_at
        ) VALUES (
            $1, $2, $3,
            $4, $5, $6,
            $7, $8, $9,
            $10, $11, $12,
            $13, $14, $15, $16
        )`,
		b.ID, details.UserID, b.Status,
		b.Pickup.Name, b.Pickup.Lat, b.Pickup.Lng,
		b.Dropoff.Name, b.Dropoff.Lat, b.Dropoff.Lng,
		b.Driver.Name, b.Driver.Car, b.Driver.Plate,
		b.ETAMinutes, b.Fare, details.VehicleType, b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Postgres) CancelBooking(ctx context.Context, bookingID string) (*BookingResult, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE bookings
        SET status = $1,
            refund_amount = fare,
            cancelled_at = NOW()
        WHERE id = $2 AND status NOT IN ($1, $3)
        RETURNING id, status,
                  pickup_name, pickup_lat, pickup_lng,
                  dropoff_name, dropoff_lat, dropoff_lng,
                  driver_name, driver_car, driver_plate,
                  eta_minutes, fare, refund_amount, created_at`,
		StatusCancelled, bookingID, StatusCompleted,
	)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Postgres) GetUserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, name, email, phone, preferences
        FROM users
        WHERE id = $1`, userID,
	)

	var u UserProfile
	var email, phone sql.NullString
	var prefs []byte
	err := row.Scan(&u.ID, &u.Name, &email, &phone, &prefs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Email = email.String
	u.Phone = phone.String
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &u.Preferences); err != nil {
			return nil, err
		}
	}
	return &u, nil
}

func (s *Postgres) GetRideHistory(ctx context.Context, userID string) ([]RideRecord, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, pickup_name, dropoff_name, created_at, status, fare, COALESCE(car_type, '')
        FROM bookings
        WHERE user_id = $1
        ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RideRecord
	for rows.Next() {
		var r RideRecord
		if err := rows.Scan(&r.ID, &r.Pickup, &r.Dropoff, &r.Date, &r.Status, &r.Fare, &r.CarType); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Postgres) GetCarpoolMatches(ctx context.Context, userID string) ([]CarpoolMatch, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, driver, pickup, dropoff, departs_at, seats, price
        FROM carpool_matches
        WHERE user_id = $1 AND departs_at > NOW()
        ORDER BY departs_at`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CarpoolMatch
	for rows.Next() {
		var m CarpoolMatch
		if err := rows.Scan(&m.ID, &m.Driver, &m.Pickup, &m.Dropoff, &m.Time, &m.Seats, &m.Price); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Postgres) EscalateToHuman(ctx context.Context, userID, message string, sentiment types.Sentiment) (*EscalationTicket, error) {
	t := &EscalationTicket{
		ID:        fmt.Sprintf("ticket_%s", uuid.NewString()[:6]),
		UserID:    userID,
		Message:   message,
		Sentiment: sentiment,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	_, err := s.db.Exec(ctx, `
        INSERT INTO escalations (
            id, user_id, message, sentiment_label, sentiment_score, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.UserID, t.Message, string(t.Sentiment.Label), t.Sentiment.Score, t.Status, t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Postgres) GetUserNotificationToken(ctx context.Context, userID string) (string, error) {
	row := s.db.QueryRow(ctx, `
        SELECT notification_token FROM users WHERE id = $1`, userID,
	)
	var token sql.NullString
	err := row.Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token.String, nil
}

func (s *Postgres) UpdateUserPreferences(ctx context.Context, userID string, preferences map[string]string) (*UserProfile, error) {
	raw, err := json.Marshal(preferences)
	if err != nil {
		return nil, err
	}
	tag, err := s.db.Exec(ctx, `
        UPDATE users
        SET preferences = COALESCE(preferences, '{}'::jsonb) || $1::jsonb
        WHERE id = $2`, raw, userID,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return s.GetUserProfile(ctx, userID)
}

func (s *Postgres) GetAvailableVehicles(ctx context.Context, location types.Point) ([]Vehicle, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, type, model, eta_minutes, fare
        FROM vehicles
        WHERE available
        ORDER BY eta_minutes`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.Type, &v.Model, &v.ETAMinutes, &v.Fare); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanBooking(row pgx.Row) (*BookingResult, error) {
	var b BookingResult
	var driverName, driverCar, driverPlate sql.NullString
	var eta sql.NullInt64
	var fare, refund sql.NullFloat64

	err := row.Scan(
		&b.ID, &b.Status,
		&b.Pickup.Name, &b.Pickup.Lat, &b.Pickup.Lng,
		&b.Dropoff.Name, &b.Dropoff.Lat, &b.Dropoff.Lng,
		&driverName, &driverCar, &driverPlate,
		&eta, &fare, &refund, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if driverName.Valid {
		b.Driver = &Driver{Name: driverName.String, Car: driverCar.String, Plate: driverPlate.String}
	}
	b.ETAMinutes = int(eta.Int64)
	b.Fare = fare.Float64
	b.RefundAmount = refund.Float64
	return &b, nil
}
