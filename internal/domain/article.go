package domain

import "time"

// UnknownSource is the sentinel used when no publication name could be resolved.
const UnknownSource = "Unknown"

// Article is a core entity describing one ingested news item, normalized
// from whichever source format it arrived in.
type Article struct {
	Title   string
	Summary string
	Date    time.Time
	URL     string
	Source  string
}

// AnalyzedArticle pairs an article with the sentiment attached to it.
type AnalyzedArticle struct {
	Article   Article
	Sentiment SentimentResult
}

// Analysis is the ordered result of one pipeline run, newest article first.
// A new run wholly replaces any analysis the caller held before.
type Analysis []AnalyzedArticle

// Summary aggregates per-class counts and percentages over one analysis.
// Counts are derived from the pattern-method label only.
type Summary struct {
	TotalCount    int
	PositiveCount int
	NegativeCount int
	NeutralCount  int
	PositivePct   float64
	NegativePct   float64
	NeutralPct    float64
}
