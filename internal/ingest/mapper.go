package ingest

import (
	"fmt"
	"strings"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/normalize"
)

// MapRecord converts one raw record into a canonical article. Every format
// flows through this single path: the summary is markup-stripped, unparsable
// or absent dates degrade to the current time, and the source falls back
// from the explicit field to the link host to the Unknown sentinel.
func MapRecord(rec Record) (domain.Article, error) {
	if rec == nil {
		return domain.Article{}, fmt.Errorf("nil record")
	}

	title, _ := rec.Field(FieldTitle)
	summary, _ := rec.Field(FieldSummary)
	published, _ := rec.Field(FieldPublished)
	link, _ := rec.Field(FieldURL)
	explicit, _ := rec.Field(FieldSource)

	date, _ := normalize.ParseDate(published)

	return domain.Article{
		Title:   strings.TrimSpace(title),
		Summary: normalize.StripMarkup(summary),
		Date:    date,
		URL:     strings.TrimSpace(link),
		Source:  normalize.ResolveSource(explicit, link),
	}, nil
}
