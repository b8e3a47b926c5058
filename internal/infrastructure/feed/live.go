// Package feed implements the live search-feed source: one bounded HTTP GET
// per analysis against a Google-News-style RSS search endpoint.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/mmcdole/gofeed/rss"

	"SentimentScanner/internal/config"
	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/ingest"
	"SentimentScanner/internal/ports"
)

// Client fetches search results for a keyword and exposes the feed entries
// as ingestion records.
type Client struct {
	endpoint  string
	userAgent string
	language  string
	country   string
	edition   string
	client    *http.Client
	logger    *slog.Logger
}

var _ ports.FeedSource = (*Client)(nil)

// NewClient wires an HTTP client bounded by the configured timeout.
func NewClient(cfg config.FeedConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint:  cfg.Endpoint,
		userAgent: cfg.UserAgent,
		language:  cfg.Language,
		country:   cfg.Country,
		edition:   cfg.Edition,
		client:    &http.Client{Timeout: cfg.Timeout()},
		logger:    logger,
	}
}

// Search issues the GET for the keyword and parses the RSS body. Transport
// failures and non-success statuses are terminal; an entry-less feed yields
// an empty batch and no error.
func (c *Client) Search(ctx context.Context, keyword string) ([]ingest.Record, error) {
	searchURL, err := c.buildSearchURL(keyword)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: searchURL, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: searchURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.TransportError{URL: searchURL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	parser := &rss.Parser{}
	parsed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{URL: searchURL, Err: fmt.Errorf("parse feed: %w", err)}
	}

	c.debug("feed fetched", "keyword", keyword, "entries", len(parsed.Items))
	return ingest.RSSRecords(parsed.Items), nil
}

func (c *Client) buildSearchURL(keyword string) (string, error) {
	parsed, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid feed endpoint %s: %w", c.endpoint, err)
	}

	query := parsed.Query()
	query.Set("q", keyword)
	query.Set("hl", c.language)
	query.Set("gl", c.country)
	query.Set("ceid", c.edition)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (c *Client) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
