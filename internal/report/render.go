// Package report renders analysis results for the CLI, the stand-in for the
// dashboard display layer.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/normalize"
)

const maxTitleWidth = 60

// RenderTable writes the analyzed articles as a text table, newest first.
func RenderTable(w io.Writer, analysis domain.Analysis) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Title", "Source", "Date", "Pattern", "VADER", "Urgency"})

	for _, item := range analysis {
		t.AppendRow(table.Row{
			truncate(normalize.CleanText(item.Article.Title), maxTitleWidth),
			item.Article.Source,
			item.Article.Date.Format("2006-01-02 15:04"),
			item.Sentiment.PatternLabel,
			item.Sentiment.VaderLabel,
			item.Sentiment.Urgency,
		})
	}

	t.Render()
}

// RenderSummary writes the per-class counts and percentages.
func RenderSummary(w io.Writer, summary domain.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Sentiment", "Articles", "Share"})
	t.AppendRows([]table.Row{
		{"Positive", summary.PositiveCount, fmt.Sprintf("%.1f%%", summary.PositivePct)},
		{"Negative", summary.NegativeCount, fmt.Sprintf("%.1f%%", summary.NegativePct)},
		{"Neutral", summary.NeutralCount, fmt.Sprintf("%.1f%%", summary.NeutralPct)},
	})
	t.AppendFooter(table.Row{"Total", summary.TotalCount, ""})
	t.Render()
}

// ClickableLink formats a markdown link for the article, defaulting the
// scheme to https when the URL carries none. Empty URLs yield the bare title.
func ClickableLink(title, rawURL string) string {
	link := strings.TrimSpace(rawURL)
	if link == "" {
		return title
	}
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		link = "https://" + link
	}
	return fmt.Sprintf("[%s](%s)", title, link)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
