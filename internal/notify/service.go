// README: Push notification service; resolves device tokens through the backend.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"cruise/internal/backend"
)

var ErrNoToken = errors.New("no notification token found for user")

// Notification is one push message.
type Notification struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Sender delivers a notification to a device.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// Service resolves a user's device token and hands the message to a Sender.
type Service struct {
	backend backend.Backend
	sender  Sender
	log     *logrus.Entry
}

func NewService(b backend.Backend, sender Sender) *Service {
	if sender == nil {
		sender = &LogSender{}
	}
	return &Service{
		backend: b,
		sender:  sender,
		log:     logrus.WithField("component", "notify"),
	}
}

// SendToUser looks up the user's device token and delivers the notification.
// Users without a registered token get ErrNoToken.
func (s *Service) SendToUser(ctx context.Context, userID, title, body string, data map[string]string) error {
	token, err := s.backend.GetUserNotificationToken(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup token for %s: %w", userID, err)
	}
	if token == "" {
		return ErrNoToken
	}
	return s.sender.Send(ctx, Notification{Token: token, Title: title, Body: body, Data: data})
}

// LogSender logs notifications instead of delivering them. Default for local
// runs without a push endpoint.
type LogSender struct{}

func (l *LogSender) Send(ctx context.Context, n Notification) error {
	logrus.WithFields(logrus.Fields{
		"component": "notify",
		"token":     n.Token,
		"title":     n.Title,
	}).Info("notification (log sender)")
	return nil
}

// HTTPSender posts notifications to a push gateway.
type HTTPSender struct {
	url    string
	client *http.Client
}

func NewHTTPSender(url string) *HTTPSender {
	return &HTTPSender{url: url, client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *HTTPSender) Send(ctx context.Context, n Notification) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("push gateway returned %d", resp.StatusCode)
	}
	return nil
}
