// Package sentiment runs the two lexicon oracles over article text and
// reconciles their labels into an action-urgency level.
package sentiment

import (
	"context"
	"log/slog"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/ports"
)

// Fixed classification thresholds. Not configurable.
const (
	positivePolarity = 0.1
	negativePolarity = -0.1
	positiveCompound = 0.05
	negativeCompound = -0.05
)

// Scorer scores one text with both oracles. Oracle failures degrade to the
// neutral default result so scoring never aborts a pipeline run.
type Scorer struct {
	pattern   ports.PolarityOracle
	intensity ports.IntensityOracle
	logger    *slog.Logger
}

// NewScorer wires both oracles.
func NewScorer(pattern ports.PolarityOracle, intensity ports.IntensityOracle, logger *slog.Logger) *Scorer {
	return &Scorer{pattern: pattern, intensity: intensity, logger: logger}
}

// Score runs both methods and reconciles them. It never returns an error.
func (s *Scorer) Score(ctx context.Context, text string) domain.SentimentResult {
	if s.pattern == nil || s.intensity == nil {
		s.warn("scoring oracles are not wired")
		return domain.NeutralResult()
	}

	polarity, err := s.pattern.Polarity(ctx, text)
	if err != nil {
		s.warn("polarity oracle failed", "error", err)
		return domain.NeutralResult()
	}

	intensity, err := s.intensity.Intensity(ctx, text)
	if err != nil {
		s.warn("intensity oracle failed", "error", err)
		return domain.NeutralResult()
	}

	patternLabel := classifyPolarity(polarity.Polarity)
	vaderLabel := classifyCompound(intensity.Compound)

	return domain.SentimentResult{
		PatternLabel: patternLabel,
		Polarity:     polarity.Polarity,
		Subjectivity: polarity.Subjectivity,
		VaderLabel:   vaderLabel,
		Compound:     intensity.Compound,
		Positive:     intensity.Positive,
		Negative:     intensity.Negative,
		Neutral:      intensity.Neutral,
		Urgency:      ReconcileUrgency(patternLabel, vaderLabel),
	}
}

// ScoringText combines title and summary the same way for every ingestion
// path: "title. summary" when a summary exists, else the bare title.
func ScoringText(article domain.Article) string {
	if article.Summary == "" {
		return article.Title
	}
	return article.Title + ". " + article.Summary
}

// ReconcileUrgency derives the action label purely from the two method
// labels: joint negativity is High, joint positivity Low, anything else
// (either neutral, or disagreement) Medium.
func ReconcileUrgency(pattern, vader domain.Sentiment) domain.Urgency {
	switch {
	case pattern == domain.SentimentNegative && vader == domain.SentimentNegative:
		return domain.UrgencyHigh
	case pattern == domain.SentimentPositive && vader == domain.SentimentPositive:
		return domain.UrgencyLow
	default:
		return domain.UrgencyMedium
	}
}

func classifyPolarity(polarity float64) domain.Sentiment {
	switch {
	case polarity > positivePolarity:
		return domain.SentimentPositive
	case polarity < negativePolarity:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func classifyCompound(compound float64) domain.Sentiment {
	switch {
	case compound >= positiveCompound:
		return domain.SentimentPositive
	case compound <= negativeCompound:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func (s *Scorer) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
