package ports

import (
	"context"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/ingest"
)

// FeedSource searches a live syndication feed and yields raw entry records.
type FeedSource interface {
	Search(ctx context.Context, keyword string) ([]ingest.Record, error)
}

// PolarityOracle scores polarity and subjectivity of a text (method A).
// Implementations are treated as opaque lexicon scorers.
type PolarityOracle interface {
	Polarity(ctx context.Context, text string) (domain.PolarityScores, error)
}

// IntensityOracle scores the compound value and per-class intensities of a
// text (method B).
type IntensityOracle interface {
	Intensity(ctx context.Context, text string) (domain.IntensityScores, error)
}
