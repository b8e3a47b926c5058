package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/ingest"
	"SentimentScanner/internal/ports"
	"SentimentScanner/internal/sentiment"
)

// AnalyzerDeps wires all driven adapters into the orchestration pipeline.
type AnalyzerDeps struct {
	Feed     ports.FeedSource
	Registry *ingest.Registry
	Scorer   *sentiment.Scorer
	Logger   *slog.Logger
}

// Analyzer implements the article ingestion and scoring workflow. One run is
// synchronous and atomic from the caller's perspective: it either returns a
// collection (possibly empty) or a terminal error, never both.
type Analyzer struct {
	feed     ports.FeedSource
	registry *ingest.Registry
	scorer   *sentiment.Scorer
	logger   *slog.Logger
}

// NewAnalyzer constructs the orchestration component.
func NewAnalyzer(deps AnalyzerDeps) *Analyzer {
	return &Analyzer{
		feed:     deps.Feed,
		registry: deps.Registry,
		scorer:   deps.Scorer,
		logger:   deps.Logger,
	}
}

// AnalyzeKeyword fetches the live feed for the keyword and scores every
// entry. Transport failures are terminal; a feed with zero entries yields an
// empty analysis and no error, so callers can tell "nothing found" from
// "could not complete".
func (a *Analyzer) AnalyzeKeyword(ctx context.Context, keyword string) (domain.Analysis, error) {
	if a.feed == nil {
		return nil, fmt.Errorf("feed source is not configured")
	}

	records, err := a.feed.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search feed: %w", err)
	}

	return a.analyze(ctx, records), nil
}

// AnalyzeFile ingests an uploaded file chosen by extension and scores every
// record. Unsupported extensions and malformed payloads are terminal schema
// errors.
func (a *Analyzer) AnalyzeFile(ctx context.Context, name string, r io.Reader) (domain.Analysis, error) {
	if a.registry == nil {
		return nil, fmt.Errorf("ingestor registry is not configured")
	}

	ingestor, err := a.registry.ForFile(name)
	if err != nil {
		return nil, err
	}

	records, err := ingestor.Records(r)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", ingestor.Format(), err)
	}

	return a.analyze(ctx, records), nil
}

// analyze maps and scores every record, isolating per-record failures, and
// sorts the survivors by date descending. The sort is stable: equal dates
// keep arrival order.
func (a *Analyzer) analyze(ctx context.Context, records []ingest.Record) domain.Analysis {
	analysis := make(domain.Analysis, 0, len(records))

	for i, rec := range records {
		article, err := ingest.MapRecord(rec)
		if err != nil {
			a.warn("skipping record", "index", i, "error", err)
			continue
		}

		result := domain.NeutralResult()
		if a.scorer != nil {
			result = a.scorer.Score(ctx, sentiment.ScoringText(article))
		}
		analysis = append(analysis, domain.AnalyzedArticle{Article: article, Sentiment: result})
	}

	sort.SliceStable(analysis, func(i, j int) bool {
		return analysis[i].Article.Date.After(analysis[j].Article.Date)
	})

	a.debug("analysis assembled", "articles", len(analysis))
	return analysis
}

func (a *Analyzer) warn(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}

func (a *Analyzer) debug(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
