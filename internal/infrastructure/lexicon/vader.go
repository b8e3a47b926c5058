package lexicon

import (
	"context"
	"fmt"

	"github.com/jonreiter/govader"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/ports"
)

// VADER wraps the govader intensity analyzer. The analyzer is stateless over
// input text, so one instance is built at startup and reused for every call.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ ports.IntensityOracle = (*VADER)(nil)

// NewVADER constructs the analyzer with its bundled English lexicon.
func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Intensity scores the text and maps the analyzer output onto domain scores.
func (v *VADER) Intensity(_ context.Context, text string) (domain.IntensityScores, error) {
	if v == nil || v.analyzer == nil {
		return domain.IntensityScores{}, fmt.Errorf("vader analyzer is not initialized")
	}

	scores := v.analyzer.PolarityScores(text)
	return domain.IntensityScores{
		Compound: scores.Compound,
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
	}, nil
}
