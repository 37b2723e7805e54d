// README: Remote backend client over the ride-hailing platform's REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"cruise/internal/types"
)

// Client is a Backend implementation talking to the platform's REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a Client for baseURL with bearer-token auth. The caller
// supplies timeouts through the request context; the client sets none.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("backend request %s %s: invalid api key", method, endpoint)
	case resp.StatusCode >= 400:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend request %s %s: status %d: %s", method, endpoint, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend response %s %s: %w", method, endpoint, err)
	}
	return nil
}

func (c *Client) CreateBooking(ctx context.Context, details BookingDetails) (*BookingResult, error) {
	var out BookingResult
	if err := c.do(ctx, http.MethodPost, "bookings", details, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*BookingResult, error) {
	var out BookingResult
	endpoint := fmt.Sprintf("bookings/%s/cancel", url.PathEscape(bookingID))
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	var out UserProfile
	if err := c.do(ctx, http.MethodGet, "users/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetRideHistory(ctx context.Context, userID string) ([]RideRecord, error) {
	var out []RideRecord
	endpoint := fmt.Sprintf("users/%s/rides", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCarpoolMatches(ctx context.Context, userID string) ([]CarpoolMatch, error) {
	var out []CarpoolMatch
	endpoint := fmt.Sprintf("users/%s/carpool-matches", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type escalateRequest struct {
	UserID    string          `json:"user_id"`
	Message   string          `json:"message"`
	Sentiment types.Sentiment `json:"sentiment"`
}

func (c *Client) EscalateToHuman(ctx context.Context, userID, message string, sentiment types.Sentiment) (*EscalationTicket, error) {
	var out EscalationTicket
	payload := escalateRequest{UserID: userID, Message: message, Sentiment: sentiment}
	if err := c.do(ctx, http.MethodPost, "support/escalate", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUserNotificationToken(ctx context.Context, userID string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	endpoint := fmt.Sprintf("users/%s/notification-token", url.PathEscape(userID))
	err := c.do(ctx, http.MethodGet, endpoint, nil, &out)
	if err == ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) UpdateUserPreferences(ctx context.Context, userID string, preferences map[string]string) (*UserProfile, error) {
	var out UserProfile
	endpoint := fmt.Sprintf("users/%s/preferences", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodPatch, endpoint, preferences, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAvailableVehicles(ctx context.Context, location types.Point) ([]Vehicle, error) {
	var out []Vehicle
	endpoint := fmt.Sprintf("vehicles/available?lat=%f&lng=%f", location.Lat, location.Lng)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
