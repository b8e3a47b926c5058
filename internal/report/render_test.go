package report

import (
	"strings"
	"testing"
	"time"

	"SentimentScanner/internal/domain"
)

func TestClickableLink(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		title string
		url   string
		want  string
	}{
		{"full url", "Story", "https://example.com/a", "[Story](https://example.com/a)"},
		{"scheme added", "Story", "example.com/a", "[Story](https://example.com/a)"},
		{"empty url", "Story", "", "Story"},
		{"whitespace url", "Story", "   ", "Story"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ClickableLink(tc.title, tc.url); got != tc.want {
				t.Fatalf("ClickableLink = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	analysis := domain.Analysis{
		{
			Article: domain.Article{
				Title:  "<b>UBS</b>  posts profit",
				Source: "Reuters",
				Date:   time.Date(2025, time.July, 7, 10, 0, 0, 0, time.UTC),
			},
			Sentiment: domain.SentimentResult{
				PatternLabel: domain.SentimentPositive,
				VaderLabel:   domain.SentimentPositive,
				Urgency:      domain.UrgencyLow,
			},
		},
	}

	var buf strings.Builder
	RenderTable(&buf, analysis)
	out := buf.String()

	for _, want := range []string{"UBS posts profit", "Reuters", "Positive", "Low"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	RenderSummary(&buf, domain.Summary{
		TotalCount:    3,
		PositiveCount: 2,
		NegativeCount: 1,
		PositivePct:   66.7,
		NegativePct:   33.3,
	})
	out := buf.String()

	for _, want := range []string{"Positive", "66.7%", "Negative", "33.3%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary output missing %q:\n%s", want, out)
		}
	}
}
