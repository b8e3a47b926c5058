package sentiment

import (
	"context"
	"fmt"
	"testing"

	"SentimentScanner/internal/domain"
)

type stubPolarity struct {
	scores domain.PolarityScores
	err    error
}

func (s stubPolarity) Polarity(context.Context, string) (domain.PolarityScores, error) {
	return s.scores, s.err
}

type stubIntensity struct {
	scores domain.IntensityScores
	err    error
}

func (s stubIntensity) Intensity(context.Context, string) (domain.IntensityScores, error) {
	return s.scores, s.err
}

func TestScoreClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		polarity    float64
		compound    float64
		wantPattern domain.Sentiment
		wantVader   domain.Sentiment
		wantUrgency domain.Urgency
	}{
		{"both positive", 0.5, 0.6, domain.SentimentPositive, domain.SentimentPositive, domain.UrgencyLow},
		{"both negative", -0.5, -0.6, domain.SentimentNegative, domain.SentimentNegative, domain.UrgencyHigh},
		{"both neutral", 0.0, 0.0, domain.SentimentNeutral, domain.SentimentNeutral, domain.UrgencyMedium},
		{"disagreement", 0.5, -0.6, domain.SentimentPositive, domain.SentimentNegative, domain.UrgencyMedium},
		{"polarity at threshold is neutral", 0.1, 0.6, domain.SentimentNeutral, domain.SentimentPositive, domain.UrgencyMedium},
		{"compound at threshold is positive", 0.5, 0.05, domain.SentimentPositive, domain.SentimentPositive, domain.UrgencyLow},
		{"compound at negative threshold", -0.5, -0.05, domain.SentimentNegative, domain.SentimentNegative, domain.UrgencyHigh},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scorer := NewScorer(
				stubPolarity{scores: domain.PolarityScores{Polarity: tc.polarity, Subjectivity: 0.5}},
				stubIntensity{scores: domain.IntensityScores{Compound: tc.compound, Neutral: 1.0}},
				nil,
			)

			result := scorer.Score(context.Background(), "some text")
			if result.PatternLabel != tc.wantPattern {
				t.Fatalf("pattern label = %s, want %s", result.PatternLabel, tc.wantPattern)
			}
			if result.VaderLabel != tc.wantVader {
				t.Fatalf("vader label = %s, want %s", result.VaderLabel, tc.wantVader)
			}
			if result.Urgency != tc.wantUrgency {
				t.Fatalf("urgency = %s, want %s", result.Urgency, tc.wantUrgency)
			}
		})
	}
}

func TestReconcileUrgencyTable(t *testing.T) {
	t.Parallel()

	labels := []domain.Sentiment{
		domain.SentimentPositive,
		domain.SentimentNegative,
		domain.SentimentNeutral,
	}

	for _, pattern := range labels {
		for _, vader := range labels {
			want := domain.UrgencyMedium
			switch {
			case pattern == domain.SentimentNegative && vader == domain.SentimentNegative:
				want = domain.UrgencyHigh
			case pattern == domain.SentimentPositive && vader == domain.SentimentPositive:
				want = domain.UrgencyLow
			}

			if got := ReconcileUrgency(pattern, vader); got != want {
				t.Fatalf("ReconcileUrgency(%s, %s) = %s, want %s", pattern, vader, got, want)
			}
		}
	}
}

func TestScoreOracleFailure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		pattern   stubPolarity
		intensity stubIntensity
	}{
		{
			"polarity oracle fails",
			stubPolarity{err: fmt.Errorf("oracle down")},
			stubIntensity{scores: domain.IntensityScores{Compound: 0.9}},
		},
		{
			"intensity oracle fails",
			stubPolarity{scores: domain.PolarityScores{Polarity: 0.9}},
			stubIntensity{err: fmt.Errorf("oracle down")},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scorer := NewScorer(tc.pattern, tc.intensity, nil)
			got := scorer.Score(context.Background(), "text")

			if got != domain.NeutralResult() {
				t.Fatalf("expected the neutral default, got %+v", got)
			}
		})
	}
}

func TestScoreMissingOracles(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(nil, nil, nil)
	if got := scorer.Score(context.Background(), "text"); got != domain.NeutralResult() {
		t.Fatalf("expected the neutral default, got %+v", got)
	}
}

func TestScoringText(t *testing.T) {
	t.Parallel()

	withSummary := domain.Article{Title: "Title", Summary: "Summary"}
	if got := ScoringText(withSummary); got != "Title. Summary" {
		t.Fatalf("ScoringText = %q", got)
	}

	titleOnly := domain.Article{Title: "Title"}
	if got := ScoringText(titleOnly); got != "Title" {
		t.Fatalf("ScoringText = %q", got)
	}
}
