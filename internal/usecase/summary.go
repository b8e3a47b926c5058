package usecase

import "SentimentScanner/internal/domain"

// BuildSummary aggregates pattern-method labels into per-class counts and
// percentages. Defined for the empty analysis: total zero, all fields zero.
func BuildSummary(analysis domain.Analysis) domain.Summary {
	summary := domain.Summary{TotalCount: len(analysis)}
	if summary.TotalCount == 0 {
		return summary
	}

	for _, item := range analysis {
		switch item.Sentiment.PatternLabel {
		case domain.SentimentPositive:
			summary.PositiveCount++
		case domain.SentimentNegative:
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}
	}

	total := float64(summary.TotalCount)
	summary.PositivePct = float64(summary.PositiveCount) / total * 100
	summary.NegativePct = float64(summary.NegativeCount) / total * 100
	summary.NeutralPct = float64(summary.NeutralCount) / total * 100

	return summary
}
