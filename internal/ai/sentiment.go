package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HostedSentimentModel calls a hosted text-classification endpoint (the
// Hugging Face inference API shape) and returns the top-scoring star label.
type HostedSentimentModel struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHostedSentimentModel builds a client for the given inference endpoint.
// apiKey may be empty for endpoints that do not require authentication.
func NewHostedSentimentModel(url, apiKey string) *HostedSentimentModel {
	return &HostedSentimentModel{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sentimentRequest struct {
	Inputs string `json:"inputs"`
}

// Score classifies text on the 1-5 star scale. The endpoint answers with a
// nested list of {label, score} candidates per input; the first candidate of
// the first input is the top-scoring class.
func (m *HostedSentimentModel) Score(ctx context.Context, text string) (StarScore, error) {
	body, err := json.Marshal(sentimentRequest{Inputs: text})
	if err != nil {
		return StarScore{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return StarScore{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return StarScore{}, fmt.Errorf("sentiment request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return StarScore{}, fmt.Errorf("sentiment endpoint returned %d: %s", resp.StatusCode, raw)
	}

	var out [][]StarScore
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return StarScore{}, fmt.Errorf("decode sentiment response: %w", err)
	}
	if len(out) == 0 || len(out[0]) == 0 {
		return StarScore{}, fmt.Errorf("sentiment endpoint returned no classes")
	}
	return out[0][0], nil
}
