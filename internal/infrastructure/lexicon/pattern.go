// Package lexicon holds the adapters for the two sentiment scoring oracles.
package lexicon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"SentimentScanner/internal/config"
	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/ports"
)

// PatternClient talks to an external polarity/subjectivity scoring service.
// The lexicon itself is opaque; this client only carries text over and
// scores back.
type PatternClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.PolarityOracle = (*PatternClient)(nil)

// NewPatternClient creates a reusable HTTP client.
func NewPatternClient(cfg config.OracleConfig) *PatternClient {
	return &PatternClient{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Polarity sends the text for scoring.
func (c *PatternClient) Polarity(ctx context.Context, text string) (domain.PolarityScores, error) {
	if c == nil || c.endpoint == "" {
		return domain.PolarityScores{}, fmt.Errorf("pattern oracle is not configured")
	}

	var resp struct {
		Polarity     float64 `json:"polarity"`
		Subjectivity float64 `json:"subjectivity"`
	}

	if err := c.post(ctx, map[string]any{"text": text}, &resp); err != nil {
		return domain.PolarityScores{}, err
	}

	return domain.PolarityScores{Polarity: resp.Polarity, Subjectivity: resp.Subjectivity}, nil
}

func (c *PatternClient) post(ctx context.Context, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
